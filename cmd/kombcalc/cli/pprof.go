// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/pkg/profile"
)

// startProfile begins profiling per the --profile flag. The returned
// stop function writes the profile on the way out.
func (c *CLI) startProfile() (stop func()) {
	switch c.Profile {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop
	}
	return func() {}
}
