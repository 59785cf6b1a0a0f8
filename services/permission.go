package services

import "resort/constants"

// CanEdit kiểm tra role có được thao tác đặt/sửa booking không
func CanEdit(role int) bool {
	return role == constants.RoleAdmin || role == constants.RoleStaff
}

// CanCancel kiểm tra role có được hủy booking không (chỉ admin)
func CanCancel(role int) bool {
	return role == constants.RoleAdmin
}
