// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package codec

import (
	"compress/zlib"
	"io"
)

func init() {
	RegisterCompressor(&ZlibCompressor{})
}

// ZlibCompressor is the compressor for Content-Encoding: deflate.
// Bodies are expected in the zlib format of RFC 1950, which is what
// HTTP's "deflate" encoding names.
type ZlibCompressor struct{}

// Compress implements Compressor.
func (*ZlibCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriter(w), nil
}

// Decompress implements Compressor.
func (*ZlibCompressor) Decompress(r io.Reader) (io.Reader, error) {
	return zlib.NewReader(r)
}

// Name implements Compressor.
func (*ZlibCompressor) Name() string {
	return "deflate"
}

// ContentEncoding implements Compressor.
func (*ZlibCompressor) ContentEncoding() string {
	return "deflate"
}
