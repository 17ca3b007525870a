// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package vampire

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/gtank/blake2/blake2b"
)

// Digest accumulates a running checksum over every vampire product found,
// in the order tasks drain from the board. It is updated only from the
// board's OnDrain hook, which TaskBoard.Drain runs while holding the
// board's output mutex, so it needs no locking of its own.
type Digest struct {
	d *blake2b.Digest
}

// NewDigest returns a fresh, zeroed running checksum.
func NewDigest() *Digest {
	d, err := blake2b.NewDigest(nil, nil, nil, 32)
	if err != nil {
		panic(err)
	}
	return &Digest{d: d}
}

// Add folds one vampire product into the running checksum. Products are
// fed in big-endian byte order, matching the original's bswap-to-big-endian
// on little-endian hosts before hashing.
func (c *Digest) Add(v Vamp) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	c.d.Write(buf[:])
}

// Hex returns the current checksum as a lowercase hex string, suitable for
// the trailing column of a checkpoint line.
func (c *Digest) Hex() string {
	return hex.EncodeToString(c.d.Sum(nil))
}
