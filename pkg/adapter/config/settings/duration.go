// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings contains helper types for the configuration file
// settings which need a custom YAML representation.
package settings

import "time"

// Duration is a specialization of time.Duration which is encoded as
// a human-readable string, like 24h or 90m, in the YAML settings.
type Duration time.Duration

// UnmarshalText reifies the encoding.TextUnmarshaler interface, so a
// byte slice read from a YAML file can be decoded as a time duration.
// The data format must conform to the time.ParseDuration expected
// format. The receiver is only updated in absence of errors.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// MarshalText reifies the encoding.TextMarshaler interface, encoding
// the duration with the time.Duration string representation format.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std converts d to the standard time.Duration type.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
