// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
package byteview

import (
	"unsafe"
)

// ByteView is a read-only view of a string or a []byte. It never copies the underlying data.
type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

func (v ByteView) String() string { return v.data }

// Bytes returns the view as a byte slice. The result shares memory with the view and must not be
// modified.
func (v ByteView) Bytes() []byte {
	return unsafe.Slice(unsafe.StringData(v.data), len(v.data))
}
