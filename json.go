// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"net/http"

	"trpc.group/trpc-go/xmlbody/codec"
)

// Json holds a value extracted from a JSON request body. It is the sibling of
// Xml, running the same pipeline with the json serializer.
type Json[T any] struct {
	Value T
}

// FromRequestJSON deserializes T from the request's JSON body. Accepted media
// types are application/json, any type with a +json suffix, and whatever the
// WithContentType predicate allows.
func FromRequestJSON[T any](r *http.Request, opts ...Option) (*Json[T], error) {
	cfg := NewConfig(opts...)
	v, err := extract[T](r, cfg, acceptJSON(cfg), func(string) int {
		return codec.SerializationTypeJSON
	})
	if err != nil {
		return nil, err
	}
	return &Json[T]{Value: *v}, nil
}
