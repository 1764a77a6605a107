// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// structValidator runs tag-driven validation on deserialized bodies so that
// required elements missing from the document surface as deserialize errors.
type structValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var defaultValidator = &structValidator{}

func (v *structValidator) lazyInit() {
	v.once.Do(func() {
		v.validate = validator.New()
	})
}

// ValidateStruct validates struct and struct pointer targets; everything else
// passes through untouched.
func (v *structValidator) ValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.ValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		v.lazyInit()
		return v.validate.Struct(obj)
	default:
		return nil
	}
}
