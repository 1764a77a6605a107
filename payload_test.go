// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/xmlbody/errs"
)

// countingReader records how many Read calls reach the underlying reader.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

func TestCollect(t *testing.T) {
	body := []byte("<Info><username>alice</username></Info>")
	p := NewPayload(bytes.NewReader(body), int64(len(body)))
	assert.Equal(t, int64(len(body)), p.ContentLength())

	out, err := collect(context.Background(), p, DefaultLimit)
	require.Nil(t, err)
	assert.Equal(t, body, out)
}

func TestCollectUnknownLength(t *testing.T) {
	body := strings.Repeat("x", 3*readChunkSize)
	p := NewPayload(strings.NewReader(body), -1)
	out, err := collect(context.Background(), p, 4*readChunkSize)
	require.Nil(t, err)
	assert.Equal(t, []byte(body), out)
}

func TestCollectFailFast(t *testing.T) {
	cr := &countingReader{r: strings.NewReader("irrelevant, never read")}
	p := NewPayload(cr, 20)

	_, err := collect(context.Background(), p, 10)
	assert.Equal(t, errs.CodePayloadTooLarge, errs.Code(err))
	// the declared length alone must reject the payload
	assert.Zero(t, cr.reads)
}

func TestCollectOverflow(t *testing.T) {
	// no declared length, the stream itself exceeds the limit
	p := NewPayload(strings.NewReader(strings.Repeat("x", 100)), -1)
	_, err := collect(context.Background(), p, 10)
	assert.Equal(t, errs.CodeOverflow, errs.Code(err))
}

func TestCollectTransportError(t *testing.T) {
	cause := errors.New("connection reset")
	p := NewPayload(io.MultiReader(strings.NewReader("<Info>"), &failingReader{err: cause}), -1)
	_, err := collect(context.Background(), p, DefaultLimit)
	assert.Equal(t, errs.CodeTransport, errs.Code(err))
	assert.True(t, errors.Is(err, cause))
}

type failingReader struct {
	err error
}

func (f *failingReader) Read([]byte) (int, error) {
	return 0, f.err
}

func TestCollectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPayload(strings.NewReader("<Info></Info>"), -1)
	_, err := collect(ctx, p, DefaultLimit)
	assert.Equal(t, errs.CodeTransport, errs.Code(err))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCollectNoPayload(t *testing.T) {
	_, err := collect(context.Background(), nil, DefaultLimit)
	assert.Equal(t, errs.CodeTransport, errs.Code(err))

	_, err = collect(context.Background(), &Payload{}, DefaultLimit)
	assert.Equal(t, errs.CodeTransport, errs.Code(err))
}

func TestCollectNegativeLimit(t *testing.T) {
	// a nonsensical limit rejects every body instead of panicking
	p := NewPayload(strings.NewReader("<Info></Info>"), -1)
	_, err := collect(context.Background(), p, -1)
	assert.Equal(t, errs.CodeOverflow, errs.Code(err))

	p = NewPayload(strings.NewReader("<Info></Info>"), 13)
	_, err = collect(context.Background(), p, -1)
	assert.Equal(t, errs.CodePayloadTooLarge, errs.Code(err))
}

func TestCollectEmptyBody(t *testing.T) {
	p := NewPayload(bytes.NewReader(nil), 0)
	out, err := collect(context.Background(), p, DefaultLimit)
	require.Nil(t, err)
	assert.Empty(t, out)
}
