/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package synth

import (
	"fmt"

	"bennypowers.dev/prism/token"
)

// SwiftType returns the Swift type that holds values of t.
func SwiftType(t token.Type) (string, error) {
	switch t {
	case token.Color:
		return "UIColor", nil
	case token.Measure:
		return "CGFloat", nil
	case token.Typography:
		return "PrismTypography", nil
	case token.Shadow:
		return "PrismShadow", nil
	case token.Gradient:
		return "LinearGradient", nil
	case token.Generic:
		return "String", nil
	default:
		return "", fmt.Errorf("%w: %s", token.ErrUnsupportedType, t)
	}
}
