package apperrors

import (
	"errors"
	"fmt"
)

// Code classification ของ error ที่ service layer ส่งออกมา
// handler ใช้ map เป็น HTTP status โดยไม่ต้องเทียบ error string
type Code string

const (
	CodeValidation    Code = "VALIDATION"     // bad request (empty/too long/inconsistent fields)
	CodeDateFormat    Code = "DATE_FORMAT"    // unprocessable (date ไม่ใช่ YYYY-MM-DD)
	CodeDuplicateName Code = "DUPLICATE_NAME" // bad request (person name ซ้ำ)
	CodeNotFound      Code = "NOT_FOUND"      // person หรือ task ไม่มีอยู่
	CodeInternal      Code = "INTERNAL"
)

// Error domain-level error พร้อม classification
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New สร้าง domain error ใหม่
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap ห่อ error เดิมพร้อม classification
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Common errors
var (
	ErrPersonNotFound  = New(CodeNotFound, "person with this id does not exist")
	ErrTaskNotFound    = New(CodeNotFound, "task with this id does not exist")
	ErrPersonNameTaken = New(CodeDuplicateName, "person with this name already registered")
)

// Is ตรวจสอบว่า err มี code ที่ระบุหรือไม่
func Is(err error, code Code) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// CodeOf คืน code ของ err (CodeInternal ถ้าไม่ใช่ domain error)
func CodeOf(err error) Code {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return CodeInternal
}
