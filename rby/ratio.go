package rby

import "fmt"

// Ratio is an exact, non-negative fraction.
//
// Every multiply or divide against an integer truncates right away, the same
// way the cartridge rounds.
type Ratio struct {
	Num uint32
	Den uint32
}

func NewRatio(num uint32, den uint32) Ratio {
	if den == 0 {
		panic(fmt.Sprintf("ratio %d/0 has a zero denominator", num))
	}

	return Ratio{Num: num, Den: den}
}

func (r Ratio) MulInt(n uint32) uint32 {
	return n * r.Num / r.Den
}

// DivInt returns floor(n / r). Dividing by a zero ratio panics.
func (r Ratio) DivInt(n uint32) uint32 {
	if r.Num == 0 {
		panic("division by a zero ratio")
	}

	return n * r.Den / r.Num
}

func (r Ratio) Mul(other Ratio) Ratio {
	return Ratio{Num: r.Num * other.Num, Den: r.Den * other.Den}
}

func (r Ratio) IsZero() bool {
	return r.Num == 0
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
