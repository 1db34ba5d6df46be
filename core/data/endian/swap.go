// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package endian

// Swap16 reverses the byte order of every 2 byte element of data in place.
// A trailing odd byte is left untouched.
func Swap16(data []byte) {
	for i := 0; i+1 < len(data); i += 2 {
		data[i], data[i+1] = data[i+1], data[i]
	}
}

// Swap32 reverses the byte order of every 4 byte element of data in place.
// Trailing bytes that do not form a whole element are left untouched.
func Swap32(data []byte) {
	for i := 0; i+3 < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
	}
}

// SwapElements reverses the byte order of every size byte element of data.
// Sizes other than 2 and 4 are a no-op.
func SwapElements(data []byte, size int) {
	switch size {
	case 2:
		Swap16(data)
	case 4:
		Swap32(data)
	}
}
