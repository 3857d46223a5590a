/*
 * Copyright 2026 The Verse Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import "strings"

// User is the signed-in user acting on the site. Only the e-mail address
// is used, to decide whether the user is an administrator.
type User struct {
	// Email is the e-mail address of the user.
	Email string `json:"email"`
}

// NewUser returns the user of the given e-mail address, or nil when the
// address is blank.
func NewUser(email string) *User {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	return &User{Email: email}
}
