package handlers

import (
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-ddd-records/internal/application"
	"github.com/oksasatya/go-ddd-records/internal/domain/entity"
)

type userRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

func (r userRequest) Record() entity.User {
	return entity.User{Username: r.Username, Email: r.Email}
}

type roleRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r roleRequest) Record() entity.Role {
	return entity.Role{Name: r.Name}
}

type permissionRequest struct {
	Action string `json:"action" binding:"required"`
}

func (r permissionRequest) Record() entity.Permission {
	return entity.Permission{Action: r.Action}
}

type (
	UserHandler       = RecordHandler[entity.User, userRequest]
	RoleHandler       = RecordHandler[entity.Role, roleRequest]
	PermissionHandler = RecordHandler[entity.Permission, permissionRequest]
)

func NewUserHandler(svc *app.RecordService[entity.User], logger *logrus.Logger) *UserHandler {
	return NewRecordHandler[entity.User, userRequest](svc, logger)
}

func NewRoleHandler(svc *app.RecordService[entity.Role], logger *logrus.Logger) *RoleHandler {
	return NewRecordHandler[entity.Role, roleRequest](svc, logger)
}

func NewPermissionHandler(svc *app.RecordService[entity.Permission], logger *logrus.Logger) *PermissionHandler {
	return NewRecordHandler[entity.Permission, permissionRequest](svc, logger)
}
