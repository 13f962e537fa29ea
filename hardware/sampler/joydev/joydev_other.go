// This file is part of vitainput.
//
// vitainput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vitainput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vitainput.  If not, see <https://www.gnu.org/licenses/>.

//go:build !linux

package joydev

import (
	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/userinput"
)

// Sampler is not available on this platform.
type Sampler struct {
	sampler.Sampler
}

// NewSampler always fails on this platform.
func NewSampler(path string, _ userinput.Deadzone) (*Sampler, error) {
	return nil, curated.Errorf(sampler.NotSupported, "joydev")
}

// Close implements the sampler.Closer interface.
func (smp *Sampler) Close() error {
	return nil
}

// Name returns the empty string on this platform.
func (smp *Sampler) Name() string {
	return ""
}
