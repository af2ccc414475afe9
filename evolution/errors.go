// SPDX-License-Identifier: MIT

package evolution

import "fmt"

func evolutionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
