// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"bytes"
	"context"
	"io"

	"github.com/valyala/fasthttp"

	"trpc.group/trpc-go/xmlbody/codec"
	"trpc.group/trpc-go/xmlbody/errs"
	"trpc.group/trpc-go/xmlbody/log"
)

// FromRequestCtx deserializes T from a fasthttp request's XML body. The
// RequestCtx doubles as the extraction context, so client disconnects cancel
// the collection.
func FromRequestCtx[T any](ctx *fasthttp.RequestCtx, opts ...Option) (*Xml[T], error) {
	cfg := NewConfig(opts...)
	payload, err := payloadFromRequestCtx(ctx)
	if err != nil {
		return nil, err
	}
	contentType := string(ctx.Request.Header.ContentType())
	v, err := newPipeline[T](cfg, acceptXML(cfg), xmlSerializationFor).
		Run(requestContext(ctx), contentType, payload)
	if err != nil {
		log.Debugf("failed to deserialize body, request path: %s, err: %v", ctx.Path(), err)
		return nil, err
	}
	return &Xml[T]{Value: *v}, nil
}

// requestContext adapts ctx into the extraction context. A RequestCtx that
// was not produced by a server and never initialized panics in Done, those
// fall back to a background context.
func requestContext(ctx *fasthttp.RequestCtx) (c context.Context) {
	defer func() {
		if recover() != nil {
			c = context.Background()
		}
	}()
	ctx.Done()
	return ctx
}

// payloadFromRequestCtx borrows the fasthttp body as an extraction source.
// fasthttp buffers bodies itself, so the source reads from that buffer; the
// size limit still applies to the decompressed bytes.
func payloadFromRequestCtx(ctx *fasthttp.RequestCtx) (*Payload, error) {
	raw := ctx.PostBody()
	var body io.Reader = bytes.NewReader(raw)
	// fasthttp has already buffered the body, its length is the ground truth
	length := int64(len(raw))
	if encoding := string(ctx.Request.Header.Peek(headerContentEncoding)); encoding != "" && encoding != "identity" {
		c := codec.GetCompressor(encoding)
		if c == nil {
			return nil, errs.Newf(errs.CodeTransport, "unsupported content encoding %q", encoding)
		}
		body = &lazyDecompressReader{c: c, src: body}
		length = -1
	}
	return NewPayload(body, length), nil
}
