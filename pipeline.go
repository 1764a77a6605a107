// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"context"
	"encoding/xml"
	"errors"

	"go.uber.org/atomic"

	"trpc.group/trpc-go/xmlbody/codec"
	"trpc.group/trpc-go/xmlbody/errs"
)

// Pipeline runs one body extraction from content-type validation to the
// deserialized value. The stages execute strictly in order, the first failure
// short-circuits all later stages, and the only blocking point is reading the
// next body chunk.
//
// A Pipeline is single-shot: Run may complete at most once.
type Pipeline[T any] struct {
	cfg              *Config
	accept           func(mediaType string) bool
	serializationFor func(mediaType string) int

	done atomic.Bool
}

func newPipeline[T any](
	cfg *Config,
	accept func(mediaType string) bool,
	serializationFor func(mediaType string) int,
) *Pipeline[T] {
	return &Pipeline[T]{
		cfg:              cfg,
		accept:           accept,
		serializationFor: serializationFor,
	}
}

// Run executes the extraction against one request body. It returns the
// populated value, or an error carrying one of the errs codes. Running a
// completed pipeline fails with CodePipelineDone.
func (p *Pipeline[T]) Run(ctx context.Context, contentType string, payload *Payload) (*T, error) {
	if !p.done.CompareAndSwap(false, true) {
		return nil, errs.New(errs.CodePipelineDone, "pipeline already completed")
	}

	mediaType, charset, err := checkContentType(contentType, p.accept)
	if err != nil {
		return nil, err
	}
	body, err := collect(ctx, payload, p.cfg.Limit)
	if err != nil {
		return nil, err
	}
	text, err := decodeCharset(charset, body)
	if err != nil {
		return nil, err
	}

	value := new(T)
	if err := codec.Unmarshal(p.serializationFor(mediaType), text, value); err != nil {
		return nil, wrapDeserializeError(err)
	}
	if err := defaultValidator.ValidateStruct(value); err != nil {
		return nil, errs.Wrap(err, errs.CodeDeserialize, "body failed validation")
	}
	return value, nil
}

// wrapDeserializeError attaches the source line when the underlying xml
// parser reports one.
func wrapDeserializeError(err error) error {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return errs.Wrapf(err, errs.CodeDeserialize, "malformed document at line %d: %s", syn.Line, syn.Msg)
	}
	return errs.Wrap(err, errs.CodeDeserialize, "deserialize body")
}
