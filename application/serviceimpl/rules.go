package serviceimpl

import (
	"time"
	"unicode/utf8"

	"taskman/domain/apperrors"
)

// กติกา field validation ใช้เหมือนกันทั้ง create และ update
// ลำดับการตรวจตายตัว: name ว่าง → name ยาวเกิน → ไม่มี startdate → description ยาวเกิน
// → completed/enddate ไม่สอดคล้องกัน → date format → date ordering
// error แรกที่เจอคือ error ที่รายงานกลับ

const (
	maxNameLength        = 50
	maxDescriptionLength = 100
	dateLayout           = "2006-01-02"
)

func validatePersonName(name string) error {
	if name == "" {
		return apperrors.New(apperrors.CodeValidation, "person name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return apperrors.New(apperrors.CodeValidation, "person name is too long")
	}
	return nil
}

func validateTaskFields(name, description string, completed bool, startDate string, endDate *string) error {
	if name == "" {
		return apperrors.New(apperrors.CodeValidation, "task name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return apperrors.New(apperrors.CodeValidation, "task name is too long")
	}
	if startDate == "" {
		return apperrors.New(apperrors.CodeValidation, "task start date cannot be null")
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return apperrors.New(apperrors.CodeValidation, "task description is too long")
	}
	// task เสร็จแล้วต้องมี enddate และ task ที่มี enddate ต้อง completed
	hasEndDate := endDate != nil && *endDate != ""
	if completed != hasEndDate {
		return apperrors.New(apperrors.CodeValidation, "enddate and completed values are invalid")
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return apperrors.New(apperrors.CodeDateFormat, "invalid date format, use YYYY-MM-DD for dates")
	}
	if hasEndDate {
		end, err := time.Parse(dateLayout, *endDate)
		if err != nil {
			return apperrors.New(apperrors.CodeDateFormat, "invalid date format, use YYYY-MM-DD for dates")
		}
		if start.After(end) {
			return apperrors.New(apperrors.CodeValidation, "end date must not be earlier than start date")
		}
	}

	return nil
}
