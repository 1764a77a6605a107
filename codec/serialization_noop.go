// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package codec

import (
	"errors"
	"fmt"
)

func init() {
	RegisterSerializer(SerializationTypeNoop, &NoopSerialization{})
}

// Body wraps raw bytes for the noop serializer.
type Body struct {
	Data []byte
}

// String returns the raw bytes as printable text.
func (b *Body) String() string {
	return fmt.Sprintf("%v", b.Data)
}

// NoopSerialization provides empty serialization, it is used when the body
// should be kept as raw bytes.
type NoopSerialization struct{}

// Unmarshal puts the in bytes into body, body must be a *Body.
func (s *NoopSerialization) Unmarshal(in []byte, body interface{}) error {
	b, ok := body.(*Body)
	if !ok {
		return errors.New("body type is not *codec.Body")
	}
	b.Data = in
	return nil
}

// Marshal returns the bytes held by body, body must be a *Body.
func (s *NoopSerialization) Marshal(body interface{}) ([]byte, error) {
	b, ok := body.(*Body)
	if !ok {
		return nil, errors.New("body type is not *codec.Body")
	}
	return b.Data, nil
}
