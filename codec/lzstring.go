// Package codec implements the dictionary-coded string decompressor used to
// recover a script's string table from its packed UTF-16 blob. Each code
// unit carries 15 data bits (the code unit value minus 32), so the stream
// survives transport through any UTF-16-safe channel.
package codec

import (
	"strings"
	"unicode/utf8"
)

const resetValue = 1 << 14 // 2^14, MSB of a 15-bit slot

// DecompressFromUTF16 decompresses a string whose characters each encode a
// 15-bit chunk of the bit stream (code unit value minus 32). It never
// panics: malformed or truncated input yields "", which the caller treats
// as "no string table found" rather than an error.
func DecompressFromUTF16(input string) string {
	if input == "" {
		return ""
	}
	runes := []rune(input)
	return decompress(len(runes), func(i int) int {
		if i >= len(runes) {
			return -1
		}
		return int(runes[i]) - 32
	})
}

// decompress is the shared LZ78-family decoder: it reads fixed-width codes
// from a bit stream supplied one "data unit" at a time by getNextValue,
// growing a dictionary as it goes. Code 0 means "the next 8 bits are a
// literal byte", code 1 means "the next 16 bits are a literal code point",
// code 2 means "end of stream", anything else indexes the dictionary
// (or, when it names exactly the next free slot, repeats w + w[0], the
// classic LZW edge case for a sequence seen for the first time as it's
// being referenced).
func decompress(length int, getNextValue func(int) int) string {
	dictionary := make([]string, 0, 4)
	enlargeIn := 4
	dictSize := 4
	numBits := 3
	var result strings.Builder

	dataVal := getNextValue(0)
	if dataVal < 0 {
		return ""
	}
	dataPosition := resetValue
	dataIndex := 1

	for i := 0; i < 3; i++ {
		dictionary = append(dictionary, string(rune(i)))
	}

	readBits := func(n int) (int, bool) {
		bits := 0
		power := 1
		maxPower := 1 << n
		for power != maxPower {
			resb := dataVal & dataPosition
			dataPosition >>= 1
			if dataPosition == 0 {
				dataPosition = resetValue
				dataVal = getNextValue(dataIndex)
				dataIndex++
				if dataVal < 0 {
					return 0, false
				}
			}
			if resb > 0 {
				bits |= power
			}
			power <<= 1
		}
		return bits, true
	}

	preamble, ok := readBits(2)
	if !ok {
		return ""
	}

	var c string
	switch preamble {
	case 0:
		b, ok := readBits(8)
		if !ok {
			return ""
		}
		c = string(rune(b))
	case 1:
		b, ok := readBits(16)
		if !ok {
			return ""
		}
		c = string(rune(b))
	case 2:
		return ""
	default:
		return ""
	}

	dictionary = append(dictionary, c)
	w := c
	result.WriteString(c)

	for {
		if dataIndex > length {
			return ""
		}

		code, ok := readBits(numBits)
		if !ok {
			return ""
		}

		switch code {
		case 0:
			b, ok := readBits(8)
			if !ok {
				return ""
			}
			dictionary = append(dictionary, string(rune(b)))
			dictSize = len(dictionary)
			code = dictSize - 1
			enlargeIn--
		case 1:
			b, ok := readBits(16)
			if !ok {
				return ""
			}
			dictionary = append(dictionary, string(rune(b)))
			dictSize = len(dictionary)
			code = dictSize - 1
			enlargeIn--
		case 2:
			return result.String()
		}

		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}

		var entry string
		switch {
		case code < len(dictionary):
			entry = dictionary[code]
		case code == dictSize:
			entry = w + firstRune(w)
		default:
			return ""
		}

		result.WriteString(entry)

		dictionary = append(dictionary, w+firstRune(entry))
		dictSize = len(dictionary)

		enlargeIn--
		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}

		w = entry
	}
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

// CompressToUTF16 is the encoder matching DecompressFromUTF16: it packs 15
// data bits into each emitted code unit, offset by 32 so every unit lands in
// valid, transport-safe UTF-16 range. The pipeline never compresses; this
// exists for callers producing fixtures or re-packing a table.
func CompressToUTF16(uncompressed string) string {
	if uncompressed == "" {
		return ""
	}

	const bitsPerChar = 15

	dictionary := make(map[string]int)
	toCreate := make(map[string]bool)
	w := ""
	enlargeIn := 2
	dictSize := 3
	numBits := 2
	var data strings.Builder
	dataVal := 0
	dataPosition := 0

	emitBit := func(bit int) {
		dataVal = (dataVal << 1) | bit
		if dataPosition == bitsPerChar-1 {
			dataPosition = 0
			data.WriteRune(rune(dataVal + 32))
			dataVal = 0
		} else {
			dataPosition++
		}
	}

	// emitValue writes width bits of value, LSB first.
	emitValue := func(value, width int) {
		for i := 0; i < width; i++ {
			emitBit(value & 1)
			value >>= 1
		}
	}

	grow := func() {
		enlargeIn--
		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
	}

	// produce emits the code for w. A string seen for the first time goes
	// out as a literal (8- or 16-bit, selected by a numBits-wide preamble)
	// and costs two dictionary-growth steps; a known string goes out as its
	// dictionary code and costs one. The decoder mirrors this exactly.
	produce := func(w string) {
		if toCreate[w] {
			code, _ := utf8.DecodeRuneInString(w)
			if code < 256 {
				emitValue(0, numBits)
				emitValue(int(code), 8)
			} else {
				emitValue(1, numBits)
				emitValue(int(code), 16)
			}
			grow()
			delete(toCreate, w)
		} else {
			emitValue(dictionary[w], numBits)
		}
		grow()
	}

	for _, r := range uncompressed {
		c := string(r)
		if _, ok := dictionary[c]; !ok {
			dictionary[c] = dictSize
			dictSize++
			toCreate[c] = true
		}

		wc := w + c
		if _, ok := dictionary[wc]; ok {
			w = wc
			continue
		}
		produce(w)
		dictionary[wc] = dictSize
		dictSize++
		w = c
	}

	if w != "" {
		produce(w)
	}

	emitValue(2, numBits)

	for {
		emitBit(0)
		if dataPosition == 0 {
			break
		}
	}

	return data.String()
}
