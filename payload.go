// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"bytes"
	"context"
	"io"

	"trpc.group/trpc-go/xmlbody/errs"
)

// Payload is the chunked byte source of one request body. It is borrowed from
// the transport layer for the duration of a single extraction and never shared
// across extractions.
type Payload struct {
	r      io.Reader
	length int64
}

// NewPayload wraps r as an extraction source. contentLength is the declared
// total length in bytes, -1 when unknown.
func NewPayload(r io.Reader, contentLength int64) *Payload {
	return &Payload{r: r, length: contentLength}
}

// ContentLength returns the declared total length, -1 when unknown.
func (p *Payload) ContentLength() int64 {
	return p.length
}

// readChunkSize is the granularity of body reads.
const readChunkSize = 8192

// collect drains p into memory, enforcing limit.
//
// If the declared length already exceeds limit, it fails without reading a
// single chunk so no transport work is wasted. During streaming the limit is
// re-checked after every chunk; once exceeded the buffer is discarded, never
// surfacing a truncated body. Cancellation of ctx between chunks aborts the
// collection with no observable state change.
func collect(ctx context.Context, p *Payload, limit int) ([]byte, error) {
	if p == nil || p.r == nil {
		return nil, errs.New(errs.CodeTransport, "no payload")
	}
	if p.length > int64(limit) {
		return nil, errs.Newf(errs.CodePayloadTooLarge,
			"declared content length %d exceeds limit %d", p.length, limit)
	}

	var body bytes.Buffer
	if p.length > 0 {
		body.Grow(int(p.length))
	} else {
		// limit may be zero or negative, Grow panics on negative sizes
		body.Grow(min(readChunkSize, max(limit, 0)))
	}
	chunk := make([]byte, readChunkSize)
	for {
		select {
		case <-ctx.Done():
			return nil, errs.Wrap(ctx.Err(), errs.CodeTransport, "request aborted")
		default:
		}
		n, err := p.r.Read(chunk)
		if n > 0 {
			if body.Len()+n > limit {
				return nil, errs.Newf(errs.CodeOverflow, "payload exceeds limit %d", limit)
			}
			body.Write(chunk[:n])
		}
		if err == io.EOF {
			return body.Bytes(), nil
		}
		if err != nil {
			return nil, errs.Wrap(err, errs.CodeTransport, "read payload")
		}
	}
}
