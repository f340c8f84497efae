// This file is part of zx81cart.
//
// zx81cart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zx81cart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zx81cart.  If not, see <https://www.gnu.org/licenses/>.

package tape

import (
	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/logger"
)

const logTag = "tape"

// DecodePCM decodes a mono PCM stream into a Program. The samples do not need
// to be normalised. The polarity of the signal is detected from the larger of
// the positive and negative peaks.
func DecodePCM(samples []float32, sampleRate float64) (Program, error) {
	if len(samples) == 0 || sampleRate <= 0 {
		return Program{}, curated.Errorf(NoSignal)
	}

	var hi, lo float32
	for _, v := range samples {
		hi = max(hi, v)
		lo = min(lo, v)
	}

	polarity := float32(1.0)
	if -lo > hi {
		polarity = -1.0
		hi = -lo
	}
	if hi == 0 {
		return Program{}, curated.Errorf(NoSignal)
	}
	threshold := hi / 4

	bitEndSamples := int(bitEnd * sampleRate)
	fileEndSamples := int(fileEnd * sampleRate)

	var data []byte
	var current byte
	var bits int

	emit := func(pulses int) {
		current = (current << 1) | pulsesToBit(pulses)
		bits++
		if bits == 8 {
			data = append(data, current)
			current = 0
			bits = 0
		}
	}

	var high bool
	var pulses int
	var silence int
	var started bool

	for _, v := range samples {
		if v*polarity > threshold {
			if !high {
				pulses++
				started = true
			}
			high = true
			silence = 0
			continue
		}

		high = false
		silence++

		if pulses > 0 && silence >= bitEndSamples {
			emit(pulses)
			pulses = 0
		}

		if started && silence >= fileEndSamples {
			break
		}
	}

	if pulses > 0 {
		emit(pulses)
	}

	if bits != 0 {
		logger.Logf(logger.Allow, logTag, "ignoring %d trailing bits", bits)
	}

	if len(data) == 0 {
		return Program{}, curated.Errorf(NoSignal)
	}

	logger.Logf(logger.Allow, logTag, "decoded %d bytes", len(data))

	return parse(data)
}
