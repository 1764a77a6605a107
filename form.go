// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"net/http"

	"trpc.group/trpc-go/xmlbody/codec"
)

// Form holds a value extracted from a urlencoded form body. It is the sibling
// of Xml, running the same pipeline with the form serializer.
type Form[T any] struct {
	Value T
}

// FromRequestForm deserializes T from the request's urlencoded form body.
// The accepted media type is application/x-www-form-urlencoded, plus whatever
// the WithContentType predicate allows.
func FromRequestForm[T any](r *http.Request, opts ...Option) (*Form[T], error) {
	cfg := NewConfig(opts...)
	v, err := extract[T](r, cfg, acceptForm(cfg), func(string) int {
		return codec.SerializationTypeForm
	})
	if err != nil {
		return nil, err
	}
	return &Form[T]{Value: *v}, nil
}
