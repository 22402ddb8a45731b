package audio

import "testing"

func TestSampleMul(t *testing.T) {
	expectEqual(t, SampleMax.Mul(SampleMax), SampleMax)
	expectEqual(t, Sample(0x4000).Mul(0x4000), Sample(0x2000))
	expectEqual(t, SampleMin.Mul(SampleMax), SampleMin)
	expectEqual(t, SampleMin.Mul(SampleMin), SampleMax)
	expectEqual(t, Sample(0).Mul(SampleMax), Sample(0))
}

func TestSampleScale(t *testing.T) {
	expectEqual(t, SampleMax.Percent(50), Sample(0x4000))
	expectEqual(t, SampleMax.Scale(1, 3), Sample(10922))
	expectEqual(t, Sample(-7).Scale(1, 2), Sample(-3))
}

func TestSampleClip(t *testing.T) {
	expectEqual(t, Sample(0x9000).Clip(), SampleMax)
	expectEqual(t, Sample(-0x9000).Clip(), SampleMin)
	expectEqual(t, Sample(123).Clip(), Sample(123))
	expectEqual(t, SampleMax.Add(SampleMax).Clip(), SampleMax)
	expectEqual(t, SampleMin.Sub(SampleMax).Clip(), SampleMin)
}

func TestSampleInt16(t *testing.T) {
	expectEqual(t, SampleMax.Int16(), int16(32767))
	expectEqual(t, SampleMin.Int16(), int16(-32768))
	expectEqual(t, Sample(0x10000).Int16(), int16(32767))
	expectEqual(t, Sample(-1).Int16(), int16(-1))
}
