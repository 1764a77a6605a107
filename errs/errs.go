// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

// Package errs provides the structured error codes produced by body extraction.
// Every failure of an extraction carries one of these codes so that the caller
// can map it to a protocol-level response without re-reading raw bytes.
package errs

import (
	"errors"
	"fmt"
	"io"
)

// Extraction error codes.
const (
	// CodeOK means success.
	CodeOK = 0

	// CodeContentType means the declared media type is not acceptable.
	CodeContentType = 1001
	// CodePayloadTooLarge means the declared content length exceeds the
	// configured limit. No body byte has been read when it is returned.
	CodePayloadTooLarge = 1002
	// CodeOverflow means the streamed body exceeded the configured limit.
	CodeOverflow = 1003
	// CodeTransport wraps a fault of the underlying byte stream.
	CodeTransport = 1004
	// CodeCharsetUnsupported means the declared charset has no registered decoder.
	CodeCharsetUnsupported = 1005
	// CodeCharsetDecode means the body is not valid for the declared charset.
	CodeCharsetDecode = 1006
	// CodeDeserialize means the decoded body could not be mapped onto the
	// target type.
	CodeDeserialize = 1007
	// CodePipelineDone means a completed pipeline was run again.
	CodePipelineDone = 1008
	// CodeConfigInvalid means the extraction configuration failed validation.
	CodeConfigInvalid = 1009

	// CodeUnknown is used for unclassified errors.
	CodeUnknown = 1999
)

const success = "success"

// Error is the extraction error, carrying a code, a message and optionally
// the underlying cause to form an error chain.
type Error struct {
	Code int
	Msg  string

	cause error
}

// Error implements the error interface and returns the error description.
func (e *Error) Error() string {
	if e == nil {
		return success
	}
	if e.cause != nil {
		return fmt.Sprintf("code:%d, msg:%s, caused by %s", e.Code, e.Msg, e.cause.Error())
	}
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Msg)
}

// Format implements the fmt.Formatter interface.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "code:%d, msg:%s", e.Code, e.Msg)
			if e.Unwrap() != nil {
				_, _ = fmt.Fprintf(s, "\nCause by %+v", e.Unwrap())
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(errs.Error=%s)", verb, e.Error())
	}
}

// Unwrap supports Go 1.13+ error chains.
func (e *Error) Unwrap() error { return e.cause }

// New creates an error from code and msg.
func New(code int, msg string) error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates an error from code, msg supports format strings.
func Newf(code int, format string, params ...interface{}) error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, params...),
	}
}

// Wrap creates a new error that contains the input error.
func Wrap(err error, code int, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf is the same as Wrap, msg supports format strings.
func Wrapf(err error, code int, format string, params ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:  code,
		Msg:   fmt.Sprintf(format, params...),
		cause: err,
	}
}

// Code returns the error code of e. Nil errors report CodeOK, errors of other
// types report CodeUnknown.
func Code(e error) int {
	if e == nil {
		return CodeOK
	}
	var err *Error
	if !errors.As(e, &err) {
		return CodeUnknown
	}
	if err == nil {
		return CodeOK
	}
	return err.Code
}

// Msg returns the error message of e.
func Msg(e error) string {
	if e == nil {
		return success
	}
	var err *Error
	if !errors.As(e, &err) {
		return e.Error()
	}
	if err == nil {
		return success
	}
	return err.Msg
}
