// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// User is the identity of an account as returned by the "get me" request.
type User struct {
	ID          int64
	FirstName   string
	LastName    string
	Username    string
	PhoneNumber string
}

// DisplayName returns "First Last", falling back to the username and then
// the phone number when the names are empty.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	switch {
	case name != "":
		return name
	case u.Username != "":
		return "@" + u.Username
	default:
		return u.PhoneNumber
	}
}
