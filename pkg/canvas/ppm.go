package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

// ErrInvalidPPM is returned when reading malformed plain PPM data
var ErrInvalidPPM = errors.New("canvas: invalid PPM")

// MaxLineLength bounds every line of PPM pixel data
const MaxLineLength = 70

// scaleChannel maps a channel to [0, maxValue], rounding to nearest
func scaleChannel[T core.Float](v T, maxValue int) int {
	scaled := int(math.Round(float64(v) * float64(maxValue)))
	if scaled < 0 {
		return 0
	}
	if scaled > maxValue {
		return maxValue
	}
	return scaled
}

// WritePPM writes the canvas as plain (P3) PPM. Each pixel row starts a new
// line and no line exceeds MaxLineLength characters.
func (c *Canvas[T]) WritePPM(w io.Writer, maxValue int) error {
	if maxValue < 1 || maxValue > 65535 {
		return fmt.Errorf("max value %d: %w", maxValue, ErrInvalidPPM)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", c.width, c.height, maxValue)

	var line strings.Builder
	flush := func() {
		if line.Len() > 0 {
			bw.WriteString(line.String())
			bw.WriteByte('\n')
			line.Reset()
		}
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			for _, v := range [3]T{p.R(), p.G(), p.B()} {
				token := strconv.Itoa(scaleChannel(v, maxValue))
				if line.Len() > 0 && line.Len()+1+len(token) > MaxLineLength {
					flush()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(token)
			}
		}
		flush()
	}
	return bw.Flush()
}

// ReadPPM parses plain (P3) PPM data. Comments starting with '#' are ignored.
// Pixels get the default alpha.
func ReadPPM[T core.Float](r io.Reader) (*Canvas[T], error) {
	tokens, err := ppmTokens(r)
	if err != nil {
		return nil, err
	}
	if len(tokens) < 4 || tokens[0] != "P3" {
		return nil, fmt.Errorf("missing P3 header: %w", ErrInvalidPPM)
	}

	header := make([]int, 3)
	for i := range header {
		v, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("header field %q: %w", tokens[i+1], ErrInvalidPPM)
		}
		header[i] = v
	}
	width, height, maxValue := header[0], header[1], header[2]
	if maxValue < 1 {
		return nil, fmt.Errorf("max value %d: %w", maxValue, ErrInvalidPPM)
	}

	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d: %w", ErrInvalidPPM, width, height, ErrInvalidSize)
	}

	// Check the header size against the data before allocating
	values := tokens[4:]
	if len(values)%3 != 0 || width > len(values)/3/height || width*height != len(values)/3 {
		return nil, fmt.Errorf("%d channel values for %dx%d: %w", len(values), width, height, ErrInvalidPPM)
	}

	c, err := New[T](width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPPM, err)
	}
	for i := range c.pixels {
		var rgb [3]T
		for k := range rgb {
			v, err := strconv.Atoi(values[i*3+k])
			if err != nil || v < 0 || v > maxValue {
				return nil, fmt.Errorf("channel value %q: %w", values[i*3+k], ErrInvalidPPM)
			}
			rgb[k] = T(v) / T(maxValue)
		}
		c.pixels[i] = core.NewRGB(rgb[0], rgb[1], rgb[2])
	}
	return c, nil
}

// ppmTokens splits PPM text into whitespace separated fields, dropping comments
func ppmTokens(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading PPM: %w", err)
	}
	return tokens, nil
}
