package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFullNameRequired    = errors.New("nombre requerido")
	ErrUsernameTooShort    = errors.New("usuario: mínimo 3 caracteres")
	ErrInvalidEmail        = errors.New("email inválido")
	ErrPasswordTooShort    = errors.New("contraseña mínimo 6 caracteres")
	ErrPasswordMismatch    = errors.New("las contraseñas no coinciden")
	ErrIdentifierRequired  = errors.New("ingrese email o usuario")
	ErrPasswordRequired    = errors.New("ingrese contraseña")
	ErrPetNameRequired     = errors.New("nombre de la mascota requerido")
	ErrPetSpeciesRequired  = errors.New("tipo de animal requerido")
	ErrPetBreedRequired    = errors.New("raza requerida")
	ErrPetAgeRequired      = errors.New("edad requerida")
	ErrPetImageRefRequired = errors.New("imagen requerida")
	ErrHistoryTextRequired = errors.New("el texto del historial no puede estar vacío")
)
