// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"unicode/utf8"

	"trpc.group/trpc-go/xmlbody/errs"
)

// CharsetDecoder transcodes a body from a source charset to UTF-8.
type CharsetDecoder interface {
	Decode(in []byte) ([]byte, error)
}

// CharsetResolver resolves a lower-case charset name to a decoder.
type CharsetResolver func(name string) (CharsetDecoder, error)

// charsetResolver is installed by importing the charset subpackage for its
// side effects. It must be set during program initialization; it is read
// without synchronization afterwards.
var charsetResolver CharsetResolver

// SetCharsetResolver installs the resolver for non-UTF-8 charsets.
// It should only be called from an init function.
func SetCharsetResolver(r CharsetResolver) {
	charsetResolver = r
}

// decodeCharset converts body to UTF-8 text. The UTF-8 path returns body
// untouched: xml is self-describing, so the deserializer can consume the
// bytes without an intermediate copy.
func decodeCharset(charset string, body []byte) ([]byte, error) {
	if isUTF8(charset) {
		return body, nil
	}
	if charsetResolver == nil {
		return nil, errs.Newf(errs.CodeCharsetUnsupported,
			"charset %q requires importing the charset subpackage", charset)
	}
	d, err := charsetResolver(charset)
	if err != nil {
		return nil, errs.Wrapf(err, errs.CodeCharsetUnsupported, "unknown charset %q", charset)
	}
	out, err := d.Decode(body)
	if err != nil {
		return nil, errs.Wrapf(err, errs.CodeCharsetDecode, "decode %s body", charset)
	}
	if !utf8.Valid(out) {
		return nil, errs.Newf(errs.CodeCharsetDecode, "decoded %s body is not valid utf-8", charset)
	}
	return out, nil
}

func isUTF8(charset string) bool {
	switch charset {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
