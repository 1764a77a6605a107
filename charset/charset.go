// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

// Package charset enables non-UTF-8 request payloads.
//
// Importing this package for its side effects installs a charset resolver
// backed by golang.org/x/text:
//
//	import _ "trpc.group/trpc-go/xmlbody/charset"
//
// Builds without the import reject any charset other than UTF-8, keeping the
// encoding tables out of the binary.
package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"trpc.group/trpc-go/xmlbody"
)

func init() {
	xmlbody.SetCharsetResolver(Resolve)
}

// Resolve returns a decoder for the named charset. Names and their aliases
// follow the WHATWG encoding index, which covers the IANA registrations seen
// in content-type headers.
func Resolve(name string) (xmlbody.CharsetDecoder, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, err
	}
	return &decoder{enc: enc}, nil
}

// decoder transcodes bytes of a single charset to UTF-8.
type decoder struct {
	enc encoding.Encoding
}

// Decode implements xmlbody.CharsetDecoder.
func (d *decoder) Decode(in []byte) ([]byte, error) {
	return d.enc.NewDecoder().Bytes(in)
}
