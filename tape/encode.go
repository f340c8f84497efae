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
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/zx81cart/curated"
)

// SampleRate of WAV files created by Encode().
const SampleRate = 44100

// output levels of the 16bit signal.
const (
	levelHigh    = 24000
	levelLow     = -24000
	levelSilence = 0
)

// signal accumulates sample data. time is kept separately from the number of
// samples so that rounding errors do not build up over the recording.
type signal struct {
	rate float64
	t    float64
	data []int
}

func (s *signal) level(v int, duration float64) {
	s.t += duration
	for float64(len(s.data)) < s.t*s.rate {
		s.data = append(s.data, v)
	}
}

func (s *signal) bit(b byte) {
	n := zeroPulses
	if b != 0 {
		n = onePulses
	}
	for range n {
		s.level(levelHigh, pulseHigh)
		s.level(levelLow, pulseLow)
	}
	s.level(levelSilence, bitGap)
}

func (s *signal) byte(v byte) {
	for i := 7; i >= 0; i-- {
		s.bit((v >> i) & 0x01)
	}
}

// Encode program as a mono 16bit WAV file. The io.WriteSeeker is not closed.
func Encode(w io.WriteSeeker, p Program) error {
	b, err := p.file()
	if err != nil {
		return err
	}

	s := signal{rate: SampleRate}
	s.level(levelSilence, leader)
	for _, v := range b {
		s.byte(v)
	}
	s.level(levelSilence, leader)

	enc := wav.NewEncoder(w, SampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           s.data,
		SourceBitDepth: 16,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf(EncodeFailure, err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf(EncodeFailure, err)
	}

	return nil
}
