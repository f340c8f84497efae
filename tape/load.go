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
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/logger"
)

// FileExtensions is the list of file extensions that are recognised as tape
// recordings.
var FileExtensions = [...]string{".WAV", ".MP3"}

// IsRecording returns true if the filename has the extension of a supported
// recording format.
func IsRecording(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load a recording and decode it. The format of the recording is decided by
// the file extension of filename.
func Load(filename string, r io.ReadSeeker) (Program, error) {
	samples, sampleRate, err := pcm(filename, r)
	if err != nil {
		return Program{}, err
	}
	return DecodePCM(samples, sampleRate)
}

// pcm returns the left channel of the recording, along with the sample rate.
func pcm(filename string, r io.ReadSeeker) ([]float32, float64, error) {
	var data []float32
	var sampleRate float64

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(r)
		if dec == nil || !dec.IsValidFile() {
			return nil, 0, curated.Errorf(DecodeFailure, "not a valid wav file")
		}

		logger.Log(logger.Allow, logTag, "loading from wav file")

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, 0, curated.Errorf(DecodeFailure, err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// copy first channel only of data stream
		chans := max(int(dec.NumChans), 1)
		data = make([]float32, 0, len(floatBuf.Data)/chans)
		for i := 0; i < len(floatBuf.Data); i += chans {
			data = append(data, floatBuf.Data[i])
		}

		sampleRate = float64(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(r)
		if err != nil {
			return nil, 0, curated.Errorf(DecodeFailure, err)
		}

		logger.Log(logger.Allow, logTag, "loading from mp3 file")

		// the stream is always 16bit little endian with two channels. each
		// sample is four bytes and the left channel is the first two bytes
		chunk := make([]byte, 4096)
		for {
			n, err := io.ReadFull(dec, chunk)
			for i := 0; i+1 < n; i += 4 {
				data = append(data, float32(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			if err != nil {
				return nil, 0, curated.Errorf(DecodeFailure, err)
			}
		}

		sampleRate = float64(dec.SampleRate())

	default:
		return nil, 0, curated.Errorf(UnsupportedFormat, filepath.Ext(filename))
	}

	logger.Logf(logger.Allow, logTag, "sample rate: %0.2fHz", sampleRate)
	if sampleRate > 0 {
		logger.Logf(logger.Allow, logTag, "total time: %.02fs", float64(len(data))/sampleRate)
	}

	return data, sampleRate, nil
}
