package validators

import (
	"testing"

	"github.com/avidalm/petkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FullName:        "Ana",
		Username:        "ana1",
		Email:           "ana@x.com",
		Password:        "secret1",
		PasswordConfirm: "secret1",
	}
}

func TestValidateRegistration_Valid(t *testing.T) {
	v := NewAccountValidator()
	fieldErrors := v.ValidateRegistration(validRegisterInput())
	assert.Empty(t, fieldErrors)
}

func TestValidateRegistration_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		field   string
		wantErr error
	}{
		{
			name:    "empty full name",
			mutate:  func(in *RegisterInput) { in.FullName = "   " },
			field:   FieldFullName,
			wantErr: ErrFullNameRequired,
		},
		{
			name:    "username too short",
			mutate:  func(in *RegisterInput) { in.Username = "ab" },
			field:   FieldUsername,
			wantErr: ErrUsernameTooShort,
		},
		{
			name:    "email without at sign",
			mutate:  func(in *RegisterInput) { in.Email = "ana.x.com" },
			field:   FieldEmail,
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without dot",
			mutate:  func(in *RegisterInput) { in.Email = "ana@xcom" },
			field:   FieldEmail,
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with spaces",
			mutate:  func(in *RegisterInput) { in.Email = "ana maria@x.com" },
			field:   FieldEmail,
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "password too short",
			mutate:  func(in *RegisterInput) { in.Password = "abc"; in.PasswordConfirm = "abc" },
			field:   FieldPassword,
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "password mismatch",
			mutate:  func(in *RegisterInput) { in.PasswordConfirm = "secret2" },
			field:   FieldPasswordConfirm,
			wantErr: ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewAccountValidator()
			in := validRegisterInput()
			tt.mutate(&in)

			fieldErrors := v.ValidateRegistration(in)
			require.Len(t, fieldErrors, 1)
			assert.ErrorIs(t, fieldErrors[tt.field], tt.wantErr)
		})
	}
}

func TestValidateRegistration_ReportsAllFieldsAtOnce(t *testing.T) {
	v := NewAccountValidator()
	fieldErrors := v.ValidateRegistration(RegisterInput{})

	assert.ErrorIs(t, fieldErrors[FieldFullName], ErrFullNameRequired)
	assert.ErrorIs(t, fieldErrors[FieldUsername], ErrUsernameTooShort)
	assert.ErrorIs(t, fieldErrors[FieldEmail], ErrInvalidEmail)
	assert.ErrorIs(t, fieldErrors[FieldPassword], ErrPasswordTooShort)
	// empty password equals empty confirmation, so no mismatch is reported
	assert.NotContains(t, fieldErrors, FieldPasswordConfirm)
}

func TestValidateLogin(t *testing.T) {
	v := NewAccountValidator()

	fieldErrors := v.ValidateLogin("", "")
	assert.ErrorIs(t, fieldErrors[FieldIdentifier], ErrIdentifierRequired)
	assert.ErrorIs(t, fieldErrors[FieldPassword], ErrPasswordRequired)

	fieldErrors = v.ValidateLogin("ana1", "secret1")
	assert.Empty(t, fieldErrors)
}

func TestValidatePet(t *testing.T) {
	v := NewAccountValidator()

	pet := models.Pet{Name: "Rex", Species: "perro", Breed: "mestizo", Age: "3", ImageRef: "rex.png"}
	assert.Empty(t, v.ValidatePet(pet))

	fieldErrors := v.ValidatePet(models.Pet{})
	assert.ErrorIs(t, fieldErrors[FieldPetName], ErrPetNameRequired)
	assert.ErrorIs(t, fieldErrors[FieldPetSpecies], ErrPetSpeciesRequired)
	assert.ErrorIs(t, fieldErrors[FieldPetBreed], ErrPetBreedRequired)
	assert.ErrorIs(t, fieldErrors[FieldPetAge], ErrPetAgeRequired)
	assert.ErrorIs(t, fieldErrors[FieldPetImageRef], ErrPetImageRefRequired)
}

func TestFieldErrors_ErrorIsDeterministic(t *testing.T) {
	fieldErrors := FieldErrors{
		FieldUsername: ErrUsernameTooShort,
		FieldEmail:    ErrInvalidEmail,
	}

	// fields are sorted, so email comes before username
	assert.Equal(t, "email: "+ErrInvalidEmail.Error()+"; username: "+ErrUsernameTooShort.Error(), fieldErrors.Error())
}
