package halftone

// Adjust applies brightness and contrast to f in place, before quantization.
// Brightness is an offset in [-1, 1] of full scale; contrast is a factor
// pivoting around mid-gray (1 = neutral, 0 = flat gray). The mapping is the
// scalar form of a brightness/contrast color matrix:
//
//	v' = clamp(contrast*v + (1-contrast)/2*255 + brightness*255)
//
// Neutral settings are an exact no-op. Alpha is untouched.
func Adjust(f *Frame, brightness, contrast float64) {
	if brightness == 0 && contrast == 1 {
		return
	}
	offset := (1-contrast)/2*255 + brightness*255
	var lut [256]byte
	for i := range lut {
		lut[i] = clampByte(contrast*float64(i) + offset)
	}
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = lut[f.Pix[i]]
		f.Pix[i+1] = lut[f.Pix[i+1]]
		f.Pix[i+2] = lut[f.Pix[i+2]]
	}
}
