// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package codec

import (
	"io"

	"github.com/golang/snappy"
)

func init() {
	RegisterCompressor(&SnappyCompressor{})
}

// SnappyCompressor is the compressor for Content-Encoding: snappy.
// The framed stream format is used so bodies can be decompressed incrementally.
type SnappyCompressor struct{}

// Compress implements Compressor.
func (*SnappyCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

// Decompress implements Compressor.
func (*SnappyCompressor) Decompress(r io.Reader) (io.Reader, error) {
	return snappy.NewReader(r), nil
}

// Name implements Compressor.
func (*SnappyCompressor) Name() string {
	return "snappy"
}

// ContentEncoding implements Compressor.
func (*SnappyCompressor) ContentEncoding() string {
	return "snappy"
}
