package validator

import (
	"regexp"
	"strings"
	"time"

	"resort/constants"
	"resort/dto"
	"resort/errors"
)

// ValidateBookingRequest validate payload đặt phòng theo loại lưu trú.
// Theo ngày bắt buộc có ngày trả phòng, theo giờ bắt buộc có giờ nhận/trả
// và chỉ ở trong một ngày.
func ValidateBookingRequest(req *dto.BookingRequest) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}

	if req.StayType == "" {
		req.StayType = constants.StayTypeDaily
	}
	if req.StayType != constants.StayTypeDaily && req.StayType != constants.StayTypeHourly {
		return errors.NewAppError(errors.ErrCodeInvalidStayType, "Loại lưu trú không hợp lệ: "+req.StayType, nil)
	}

	if req.CheckIn == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận phòng không được để trống", nil)
	}
	if !isValidDate(req.CheckIn) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ, dùng định dạng yyyy-mm-dd", nil)
	}

	if req.Phone != "" && !isValidPhone(req.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số điện thoại không hợp lệ", nil)
	}

	if req.Adults < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số khách không được âm", nil)
	}

	if req.StayType == constants.StayTypeHourly {
		if req.CheckInTime == "" || req.CheckOutTime == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Booking theo giờ phải có giờ nhận và giờ trả phòng", nil)
		}
		if !isValidTime(req.CheckInTime) || !isValidTime(req.CheckOutTime) {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ không hợp lệ, dùng định dạng HH:MM", nil)
		}
		if req.CheckOutTime <= req.CheckInTime {
			return errors.NewAppError(errors.ErrCodeValidation, "Giờ trả phòng phải sau giờ nhận phòng", nil)
		}
		return nil
	}

	// Loại theo ngày
	if req.CheckOut == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày trả phòng không được để trống", nil)
	}
	if !isValidDate(req.CheckOut) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ, dùng định dạng yyyy-mm-dd", nil)
	}
	if req.CheckOut <= req.CheckIn {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return nil
}

// ValidateDateParam kiểm tra tham số ngày trên query string
func ValidateDateParam(date string) error {
	if date == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tham số date không được để trống", nil)
	}
	if !isValidDate(date) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày không hợp lệ, dùng định dạng yyyy-mm-dd", nil)
	}
	return nil
}

// isValidDate kiểm tra chuỗi ngày ISO yyyy-mm-dd
func isValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// isValidTime kiểm tra chuỗi giờ HH:MM
func isValidTime(value string) bool {
	timeRegex := regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	return timeRegex.MatchString(value)
}

// isValidPhone kiểm tra số điện thoại hợp lệ (9-10 số)
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^0[0-9]{8,9}$`)
	return phoneRegex.MatchString(phone)
}
