// Package models holds the persistent account model and the descriptors of
// the three account classes.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/common"
)

// AccountClass selects one of the independent account namespaces.
type AccountClass int

const (
	ClassUser AccountClass = iota
	ClassAdmin
	ClassSuperAdmin
)

func (c AccountClass) String() string {
	switch c {
	case ClassUser:
		return "user"
	case ClassAdmin:
		return "admin"
	case ClassSuperAdmin:
		return "superadmin"
	}
	return fmt.Sprintf("AccountClass(%d)", int(c))
}

// Valid reports whether c is one of the known classes.
func (c AccountClass) Valid() bool {
	return c >= ClassUser && c <= ClassSuperAdmin
}

// ParseAccountClass accepts "user", "admin" and "superadmin" (any case;
// "super-admin" and "super_admin" are also understood).
func ParseAccountClass(s string) (AccountClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return ClassUser, nil
	case "admin":
		return ClassAdmin, nil
	case "superadmin", "super-admin", "super_admin":
		return ClassSuperAdmin, nil
	}
	return 0, fmt.Errorf("%w: %q", common.ErrUnknownAccountClass, s)
}

// ClassDescriptor names where and under which field names a class's
// accounts are stored.
type ClassDescriptor struct {
	Class           AccountClass
	Collection      string
	IdentifierField string
	SecretField     string
}

var descriptors = [...]ClassDescriptor{
	ClassUser:       {Class: ClassUser, Collection: "users", IdentifierField: "email", SecretField: "password"},
	ClassAdmin:      {Class: ClassAdmin, Collection: "admins", IdentifierField: "adminEmail", SecretField: "adminPassword"},
	ClassSuperAdmin: {Class: ClassSuperAdmin, Collection: "superadmins", IdentifierField: "superAdminEmail", SecretField: "superAdminPassword"},
}

// Descriptor returns the storage descriptor of class.
func Descriptor(class AccountClass) (ClassDescriptor, error) {
	if !class.Valid() {
		return ClassDescriptor{}, fmt.Errorf("%w: %d", common.ErrUnknownAccountClass, int(class))
	}
	return descriptors[class], nil
}

// Classes lists every account class.
func Classes() []AccountClass {
	return []AccountClass{ClassUser, ClassAdmin, ClassSuperAdmin}
}

// Account is a stored credential record. SecretHash is never the raw secret.
type Account struct {
	ID         string
	Class      AccountClass
	Identifier string
	SecretHash string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
