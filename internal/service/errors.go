package service

import "errors"

var (
	// ErrWrongPassword is returned by Login when the identifier matched an
	// account but the password did not.
	ErrWrongPassword = errors.New("contraseña incorrecta")

	// ErrNothingSelected is returned by Selected when no pet cursor is set.
	ErrNothingSelected = errors.New("ninguna mascota seleccionada")
)
