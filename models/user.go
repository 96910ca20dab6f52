package models

import (
	"encoding/json"
	"strings"
)

type AccountStatus string

const (
	AccountPending  AccountStatus = "pending"
	AccountApproved AccountStatus = "approved"
	AccountRejected AccountStatus = "rejected"
)

// User mirrors the backend's user record. The role relation is kept raw
// because the backend has returned it in several shapes: a plain string, an
// object with name/type, a data wrapper, or an array of roles.
type User struct {
	ID            int             `json:"id"`
	DocumentID    string          `json:"documentId,omitempty"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	AccountStatus string          `json:"account_status"`
	Name          string          `json:"name,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Confirmed     bool            `json:"confirmed"`
	Blocked       bool            `json:"blocked"`
	Role          json.RawMessage `json:"role,omitempty"`
	Roles         json.RawMessage `json:"roles,omitempty"`
}

// AuthResponse is the token+user pair returned by login and registration.
type AuthResponse struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}

// CanSignIn reports whether a freshly authenticated account may keep its
// session. The backend has been observed returning admin and validator in
// addition to the declared approved value.
func CanSignIn(accountStatus string) bool {
	switch accountStatus {
	case "approved", "admin", "validator":
		return true
	}
	return false
}

// RoleStrings collects every role-like string reachable from the user
// payload, whatever shape the backend chose for it.
func (u *User) RoleStrings() []string {
	var out []string
	out = append(out, roleStringsFromRaw(u.Role)...)
	out = append(out, roleStringsFromRaw(u.Roles)...)
	return out
}

func roleStringsFromRaw(raw json.RawMessage) []string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil
		}
		return []string{s}
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		var out []string
		for _, item := range arr {
			out = append(out, roleStringsFromRaw(item)...)
		}
		return out
	}

	var obj struct {
		Name string          `json:"name"`
		Type string          `json:"type"`
		Role json.RawMessage `json:"role"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	var out []string
	if obj.Name != "" {
		out = append(out, obj.Name)
	}
	if obj.Type != "" {
		out = append(out, obj.Type)
	}
	out = append(out, roleStringsFromRaw(obj.Role)...)
	out = append(out, roleStringsFromRaw(obj.Data)...)
	return out
}

// IsAdminRole classifies a set of role strings. Substring matching is
// intentional: the deployed backend uses both "admin" and "adminails".
func IsAdminRole(roles []string) bool {
	for _, r := range roles {
		if strings.Contains(strings.ToLower(r), "admin") {
			return true
		}
	}
	return false
}
