package gfm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

func writeFloats32(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats32 failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats32 failed: %v", err)
	}
	return nil
}

func readFloats32(fp string) ([]float32, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("readFloats32 failed: %v", err)
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("readFloats32 failed: %s is not a float32 raster", fp)
	}
	f32 := make([]float32, len(b)/4)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, f32); err != nil {
		return nil, fmt.Errorf("readFloats32 failed: %v", err)
	}
	return f32, nil
}
