/*
 * RePraxis
 *
 * Copyright 2024 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package repraxisconfig holds the module's small set of tunables, in the
style of devt.de/krotik/ecal/config.
*/
package repraxisconfig

import (
	"fmt"

	"github.com/krotik/common/errorutil"
)

/*
ProductVersion is the current version of this module.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options.
*/
const (
	// MaxSentenceLength bounds the number of bytes the lexer will accept
	// for a single sentence, guarding an embedded store against
	// unbounded tokenizer input from untrusted callers.
	MaxSentenceLength = "MaxSentenceLength"

	// StrictEmptyTokens controls whether the parser rejects sentences
	// that produce an empty token (a leading delimiter, or "..").
	// spec.md leaves this case undefined in the source; this module
	// always rejects, and the option exists only to document the
	// decision, not to allow disabling it.
	StrictEmptyTokens = "StrictEmptyTokens"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	MaxSentenceLength: 4096,
	StrictEmptyTokens: true,
}

/*
Config is the actual configuration in use.
*/
var Config map[string]interface{}

func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}
	Config = data
}

/*
Int returns a configuration value as an int, panicking via
errorutil.AssertTrue if the stored value is not numeric - the same
fail-fast contract devt.de/krotik/ecal/config uses for its own option
accessors.
*/
func Int(option string) int {
	v, ok := Config[option]
	errorutil.AssertTrue(ok, fmt.Sprintf("unknown configuration option: %v", option))

	switch n := v.(type) {
	case int:
		return n
	}

	errorutil.AssertTrue(false, fmt.Sprintf("configuration option %v is not numeric", option))

	return 0
}

/*
Bool returns a configuration value as a bool.
*/
func Bool(option string) bool {
	v, ok := Config[option]
	errorutil.AssertTrue(ok, fmt.Sprintf("unknown configuration option: %v", option))

	b, ok := v.(bool)
	errorutil.AssertTrue(ok, fmt.Sprintf("configuration option %v is not a bool", option))

	return b
}
