// Package nanbox stores floats, unsigned integers and tagged cells in the 64
// bits of an IEEE-754 double.
//
// NaN-boxing relies on the fact that every word whose exponent is all ones and
// whose mantissa is non-zero is a NaN. Only one NaN is needed to represent the
// float NaN, so the rest of that space is free to carry other payloads. Any
// consumer that merely checks for NaN sees a NaN.
//
// Layout
//
// This diagram shows the fixed bits of a boxed word (filled in) and the bits
// available for the payload (letters).
//
//  | 63 | 62 ... 52 | 51 | 50 . 49 . 48 | 47 ... 0 || Kind          |
//  |----|-----------|----|--------------|----------||---------------|
//  | s  | e e ... e | m  | m  . m  . m  | m ... m  || Float         | exponent not all ones, or mantissa zero (±Inf)
//  | 0  | 1 1 ... 1 | 1  | 0  . 0  . 0  | 0 ... 0  || Float (NaN)   | CanonicalNaN
//  | 0  | 1 1 ... 1 | 1  | u  . u  . u  | u ... u  || UnsignedInt   | u = n + 1, 51 bits
//  | 1  | 1 1 ... 1 | 1  | t  . t  . t  | a ... a  || Cell          | t = tag 1..7, a = 48 bit address
//  |----|-----------|----|--------------|----------||---------------|
//
// The sign bit discriminates cells from integers. Bit 51 is the quiet bit and
// is always set on boxed words, so they are quiet NaNs to any IEEE-754
// consumer.
//
// Integers are stored offset by one so that the zero payload remains the
// canonical NaN. The largest integer is therefore MaxUint = 2^51 - 2.
//
// Cell tag 0 is reserved. A word with the sign bit set, the quiet bit set and
// a zero tag is the default NaN produced by common hardware (0xFFF8...), and
// treating it as a cell would turn ordinary arithmetic results into handles.
//
// Foreign Words
//
// Decode accepts every 64-bit pattern. Patterns that Encode never produces
// (signaling NaNs and sign-set quiet NaNs with a zero tag) are classified as
// ClassForeign by Classify and decode to the canonical NaN float.
package nanbox
