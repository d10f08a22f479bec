// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package authuc

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// NewVerificationCode draws 3 random bytes and renders them as 6
// uppercase hexadecimal characters, e.g. "A3F09C".
func NewVerificationCode() (string, error) {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b[:])), nil
}
