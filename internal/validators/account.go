package validators

import (
	"regexp"
	"sort"
	"strings"

	"github.com/avidalm/petkeeper/models"
)

// Field name constants used to specify which fields should be validated and
// to key per-field errors so the UI can render them next to the offending
// input (field-level scoping).
const (
	// FieldFullName targets the display name entered at registration.
	FieldFullName = "full_name"

	// FieldUsername targets the unique login handle.
	FieldUsername = "username"

	// FieldEmail targets the account e-mail address.
	FieldEmail = "email"

	// FieldPassword targets the password entered at registration or login.
	FieldPassword = "password"

	// FieldPasswordConfirm targets the password confirmation input.
	FieldPasswordConfirm = "password_confirm"

	// FieldIdentifier targets the login identifier (username or e-mail).
	FieldIdentifier = "identifier"

	// FieldPetName targets a pet's name.
	FieldPetName = "pet_name"

	// FieldPetSpecies targets a pet's species.
	FieldPetSpecies = "pet_species"

	// FieldPetBreed targets a pet's breed.
	FieldPetBreed = "pet_breed"

	// FieldPetAge targets a pet's age.
	FieldPetAge = "pet_age"

	// FieldPetImageRef targets a pet's image reference.
	FieldPetImageRef = "pet_image_ref"

	// FieldHistoryText targets the text of a new pet history entry.
	FieldHistoryText = "history_text"
)

// emailPattern is the exact acceptance check used by the registration form:
// something, an @, something, a dot, something. Deliberately loose.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// FieldErrors maps a field name constant to the validation error for that
// field. It implements the error interface so services can return it through
// their usual error results; callers unwrap it with [errors.As] and render
// each entry inline.
type FieldErrors map[string]error

// Error implements the error interface. Fields are listed in a stable order
// so log output is deterministic.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field].Error())
	}
	return strings.Join(parts, "; ")
}

// RegisterInput is the raw form input of the registration flow, prior to any
// normalization.
type RegisterInput struct {
	FullName        string
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

// AccountValidator validates registration, login and pet form input.
// All checks are pure; the validator holds no state and is safe for
// concurrent use.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator.
func NewAccountValidator() *AccountValidator {
	return &AccountValidator{}
}

// ValidateRegistration checks the registration form as a whole and returns
// one error per offending field. All fields are checked in a single pass so
// the UI can show every problem at once; an empty result means valid input.
//
// Rules:
//   - full name non-empty;
//   - username at least 3 characters;
//   - e-mail matches emailPattern;
//   - password at least 6 characters;
//   - confirmation equal to password.
func (v *AccountValidator) ValidateRegistration(in RegisterInput) FieldErrors {
	fieldErrors := FieldErrors{}

	if strings.TrimSpace(in.FullName) == "" {
		fieldErrors[FieldFullName] = ErrFullNameRequired
	}
	if len(strings.TrimSpace(in.Username)) < 3 {
		fieldErrors[FieldUsername] = ErrUsernameTooShort
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		fieldErrors[FieldEmail] = ErrInvalidEmail
	}
	if len(in.Password) < 6 {
		fieldErrors[FieldPassword] = ErrPasswordTooShort
	}
	if in.Password != in.PasswordConfirm {
		fieldErrors[FieldPasswordConfirm] = ErrPasswordMismatch
	}

	return fieldErrors
}

// ValidateLogin checks the login form input. Only presence is checked here;
// matching against stored accounts is the auth service's job.
func (v *AccountValidator) ValidateLogin(identifier, password string) FieldErrors {
	fieldErrors := FieldErrors{}

	if strings.TrimSpace(identifier) == "" {
		fieldErrors[FieldIdentifier] = ErrIdentifierRequired
	}
	if password == "" {
		fieldErrors[FieldPassword] = ErrPasswordRequired
	}

	return fieldErrors
}

// ValidatePet checks that every descriptive field of a pet is non-empty.
// History and ID are not form input and are ignored.
func (v *AccountValidator) ValidatePet(pet models.Pet) FieldErrors {
	fieldErrors := FieldErrors{}

	if strings.TrimSpace(pet.Name) == "" {
		fieldErrors[FieldPetName] = ErrPetNameRequired
	}
	if strings.TrimSpace(pet.Species) == "" {
		fieldErrors[FieldPetSpecies] = ErrPetSpeciesRequired
	}
	if strings.TrimSpace(pet.Breed) == "" {
		fieldErrors[FieldPetBreed] = ErrPetBreedRequired
	}
	if strings.TrimSpace(pet.Age) == "" {
		fieldErrors[FieldPetAge] = ErrPetAgeRequired
	}
	if strings.TrimSpace(pet.ImageRef) == "" {
		fieldErrors[FieldPetImageRef] = ErrPetImageRefRequired
	}

	return fieldErrors
}
