package auth

import (
	"testing"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
)

func TestVerifyResetIdentity(t *testing.T) {
	account := &models.User{
		Email:    "jamil@unitfactor.local",
		UserName: "jamil.a",
		CnicNo:   3520212345671,
	}

	tests := []struct {
		name     string
		userName string
		cnicNo   int64
		want     bool
	}{
		{name: "both factors match", userName: "jamil.a", cnicNo: 3520212345671, want: true},
		{name: "wrong user name", userName: "jamil", cnicNo: 3520212345671, want: false},
		{name: "wrong cnic", userName: "jamil.a", cnicNo: 3520212345672, want: false},
		{name: "email alone is not enough", want: false},
		{name: "missing cnic", userName: "jamil.a", want: false},
		{name: "missing user name", cnicNo: 3520212345671, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyResetIdentity(account, tt.userName, tt.cnicNo); got != tt.want {
				t.Errorf("VerifyResetIdentity(%q, %d) = %v, want %v", tt.userName, tt.cnicNo, got, tt.want)
			}
		})
	}
}
