package directory

import "errors"

var (
	ErrFetchFailed  = errors.New("fetch users failed")
	ErrCreateFailed = errors.New("create user failed")
	ErrUpdateFailed = errors.New("update user failed")
	ErrDeleteFailed = errors.New("delete user failed")

	// ErrIncomplete is a local validation failure; no request was sent.
	ErrIncomplete = errors.New("name, email and phone are required")
	// ErrUnknownUser means the id is not in the displayed list.
	ErrUnknownUser = errors.New("user not in list")
)

// User-facing copy.
const (
	MsgFetchFailed = "No se pudieron cargar los usuarios."

	TitleIncomplete   = "Campos incompletos"
	MsgIncomplete     = "Por favor completa todos los campos."
	MsgEditIncomplete = "Todos los campos son obligatorios"

	TitleError      = "Error"
	MsgCreateFailed = "No se pudo crear el usuario."
	MsgUpdateFailed = "No se pudo actualizar el usuario."
	MsgDeleteFailed = "No se pudo eliminar el usuario."

	ToastCreated = "Usuario agregado"
	ToastUpdated = "Usuario actualizado"
	ToastDeleted = "Usuario eliminado"
)
