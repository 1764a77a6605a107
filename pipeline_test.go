// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/xmlbody/errs"
)

type pipelineInfo struct {
	Username string `xml:"username"`
}

func newXMLPipeline(cfg *Config) *Pipeline[pipelineInfo] {
	return newPipeline[pipelineInfo](cfg, acceptXML(cfg), xmlSerializationFor)
}

func TestPipelineRun(t *testing.T) {
	p := newXMLPipeline(NewConfig())
	body := "<Info><username>alice</username></Info>"
	v, err := p.Run(context.Background(), "application/xml", NewPayload(strings.NewReader(body), int64(len(body))))
	require.Nil(t, err)
	assert.Equal(t, "alice", v.Username)
}

func TestPipelineSingleShot(t *testing.T) {
	p := newXMLPipeline(NewConfig())
	body := "<Info><username>alice</username></Info>"
	_, err := p.Run(context.Background(), "application/xml", NewPayload(strings.NewReader(body), int64(len(body))))
	require.Nil(t, err)

	// a completed pipeline must refuse to run again
	_, err = p.Run(context.Background(), "application/xml", NewPayload(strings.NewReader(body), int64(len(body))))
	assert.Equal(t, errs.CodePipelineDone, errs.Code(err))
}

func TestPipelineSingleShotAfterFailure(t *testing.T) {
	p := newXMLPipeline(NewConfig())
	_, err := p.Run(context.Background(), "text/plain", NewPayload(strings.NewReader(""), 0))
	require.Equal(t, errs.CodeContentType, errs.Code(err))

	_, err = p.Run(context.Background(), "application/xml", NewPayload(strings.NewReader(""), 0))
	assert.Equal(t, errs.CodePipelineDone, errs.Code(err))
}

func TestPipelineShortCircuit(t *testing.T) {
	// content type failure must leave the stream untouched
	cr := &countingReader{r: strings.NewReader("<Info></Info>")}
	p := newXMLPipeline(NewConfig())
	_, err := p.Run(context.Background(), "text/plain", NewPayload(cr, -1))
	assert.Equal(t, errs.CodeContentType, errs.Code(err))
	assert.Zero(t, cr.reads)
}

func TestPipelineDeserializeError(t *testing.T) {
	p := newXMLPipeline(NewConfig())
	body := "<Info><username>alice"
	_, err := p.Run(context.Background(), "application/xml", NewPayload(strings.NewReader(body), int64(len(body))))
	assert.Equal(t, errs.CodeDeserialize, errs.Code(err))
}

func TestWrapDeserializeErrorPosition(t *testing.T) {
	p := newPipeline[pipelineInfo](NewConfig(), acceptXML(NewConfig()), xmlSerializationFor)
	body := "<Info>\n<username>alice</username>\n</Wrong>"
	_, err := p.Run(context.Background(), "application/xml", NewPayload(strings.NewReader(body), int64(len(body))))
	require.Equal(t, errs.CodeDeserialize, errs.Code(err))
	assert.Contains(t, errs.Msg(err), "line 3")
}

func TestPipelineRequiredField(t *testing.T) {
	type strictInfo struct {
		Username string `xml:"username" validate:"required"`
	}
	cfg := NewConfig()
	p := newPipeline[strictInfo](cfg, acceptXML(cfg), xmlSerializationFor)
	body := "<Info><user>alice</user></Info>"
	_, err := p.Run(context.Background(), "application/xml", NewPayload(strings.NewReader(body), int64(len(body))))
	assert.Equal(t, errs.CodeDeserialize, errs.Code(err))
}
