package combinatorics

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

func mustInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad literal %q", s)
	return v
}

func TestCombination(t *testing.T) {
	tests := []struct {
		n, k     int
		expected string
	}{
		{5, 2, "10"},
		{5, 0, "1"},
		{5, 5, "1"},
		{0, 0, "1"},
		{10, 3, "120"},
		{60, 2, "1770"},
		{100, 50, "100891344545564193334812497256"},
	}

	for _, tt := range tests {
		v, err := Combination(tt.n, tt.k)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, v.String(), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestCombination_KGreaterThanN(t *testing.T) {
	_, err := Combination(3, 5)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDomain))
	assert.Equal(t, domain.ReasonKGreaterThanN, domain.ReasonOf(err))
}

func TestNegativeArguments(t *testing.T) {
	calls := map[string]func() error{
		"combination": func() error { _, err := Combination(-1, 0); return err },
		"permutation": func() error { _, err := Permutation(3, -1); return err },
		"stirling2":   func() error { _, err := Stirling2(-2, 1); return err },
		"catalan":     func() error { _, err := Catalan(-1); return err },
		"bell":        func() error { _, err := Bell(-1); return err },
		"factorial":   func() error { _, err := Factorial(-4); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDomain))
			assert.Equal(t, domain.ReasonNegative, domain.ReasonOf(err))
		})
	}
}

func TestCombination_Symmetry(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for k := 0; k <= n; k++ {
			a, err := Combination(n, k)
			require.NoError(t, err)
			b, err := Combination(n, n-k)
			require.NoError(t, err)
			assert.Equal(t, 0, a.Cmp(b), "C(%d,%d) != C(%d,%d)", n, k, n, n-k)
		}
	}
}

func TestBinomialCoefficient_MatchesCombination(t *testing.T) {
	a, err := BinomialCoefficient(12, 5)
	require.NoError(t, err)
	b, err := Combination(12, 5)
	require.NoError(t, err)
	assert.Equal(t, b.String(), a.String())

	_, err = BinomialCoefficient(2, 3)
	assert.Equal(t, domain.ReasonKGreaterThanN, domain.ReasonOf(err))
}

func TestPermutation(t *testing.T) {
	v, err := Permutation(5, 2)
	require.NoError(t, err)
	assert.Equal(t, "20", v.String())

	v, err = Permutation(7, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	_, err = Permutation(2, 3)
	assert.Equal(t, domain.ReasonKGreaterThanN, domain.ReasonOf(err))
}

func TestPermutation_EqualsCombinationTimesFactorial(t *testing.T) {
	for n := 0; n <= 25; n++ {
		for k := 0; k <= n; k++ {
			p, err := Permutation(n, k)
			require.NoError(t, err)
			c, err := Combination(n, k)
			require.NoError(t, err)
			f, err := Factorial(k)
			require.NoError(t, err)
			assert.Equal(t, 0, p.Cmp(new(big.Int).Mul(c, f)), "P(%d,%d)", n, k)
		}
	}
}

func TestStirling2(t *testing.T) {
	tests := []struct {
		n, k     int
		expected string
	}{
		{0, 0, "1"},
		{3, 0, "0"},
		{5, 2, "15"},
		{5, 3, "25"},
		{6, 3, "90"},
		{10, 5, "42525"},
	}

	for _, tt := range tests {
		v, err := Stirling2(tt.n, tt.k)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, v.String(), "S(%d,%d)", tt.n, tt.k)
	}
}

func TestStirling2_KOutOfRange(t *testing.T) {
	_, err := Stirling2(3, 4)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDomain))
	assert.Equal(t, domain.ReasonKOutOfRange, domain.ReasonOf(err))
}

func TestStirling2_Diagonal(t *testing.T) {
	for n := 1; n <= 40; n++ {
		diag, err := Stirling2(n, n)
		require.NoError(t, err)
		assert.Equal(t, "1", diag.String(), "S(%d,%d)", n, n)

		first, err := Stirling2(n, 1)
		require.NoError(t, err)
		assert.Equal(t, "1", first.String(), "S(%d,1)", n)
	}
}

func TestCatalan(t *testing.T) {
	expected := []string{"1", "1", "2", "5", "14", "42", "132", "429", "1430", "4862", "16796"}
	for n, want := range expected {
		v, err := Catalan(n)
		require.NoError(t, err)
		assert.Equal(t, want, v.String(), "C_%d", n)
	}

	v, err := Catalan(30)
	require.NoError(t, err)
	assert.Equal(t, "3814986502092304", v.String())
}

func TestCatalan_TimesNPlusOneIsCentralBinomial(t *testing.T) {
	for n := 0; n <= 60; n++ {
		c, err := Catalan(n)
		require.NoError(t, err)
		central, err := Combination(2*n, n)
		require.NoError(t, err)
		assert.Equal(t, 0, central.Cmp(new(big.Int).Mul(c, big.NewInt(int64(n+1)))), "n=%d", n)
	}
}

func TestBell(t *testing.T) {
	expected := []string{"1", "1", "2", "5", "15", "52", "203", "877", "4140", "21147", "115975"}
	for n, want := range expected {
		v, err := Bell(n)
		require.NoError(t, err)
		assert.Equal(t, want, v.String(), "B_%d", n)
	}

	v, err := Bell(30)
	require.NoError(t, err)
	assert.Equal(t, 0, mustInt(t, "846749014511809332450147").Cmp(v))
}

func TestBell_SumOfBinomials(t *testing.T) {
	bells := make([]*big.Int, 0, 26)
	for n := 0; n <= 25; n++ {
		v, err := Bell(n)
		require.NoError(t, err)
		bells = append(bells, v)
	}

	for n := 1; n <= 25; n++ {
		sum := new(big.Int)
		for k := 0; k < n; k++ {
			c, err := Combination(n-1, k)
			require.NoError(t, err)
			sum.Add(sum, new(big.Int).Mul(c, bells[k]))
		}
		assert.Equal(t, 0, sum.Cmp(bells[n]), "B_%d", n)
	}
}

func TestBellTriangle(t *testing.T) {
	rows, err := BellTriangle(3)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	render := func(row []*big.Int) []string {
		out := make([]string, len(row))
		for i, v := range row {
			out[i] = v.String()
		}
		return out
	}
	assert.Equal(t, []string{"1"}, render(rows[0]))
	assert.Equal(t, []string{"1", "2"}, render(rows[1]))
	assert.Equal(t, []string{"2", "3", "5"}, render(rows[2]))
	assert.Equal(t, []string{"5", "7", "10", "15"}, render(rows[3]))
}

func TestStirling2_ClosedForms(t *testing.T) {
	tests := []struct {
		name string
		k    int
		want func(n int) *big.Int
	}{
		{"k two", 2, func(n int) *big.Int {
			// 2^(n-1) - 1
			v := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
			return v.Sub(v, big.NewInt(1))
		}},
		{"k n minus one", -1, func(n int) *big.Int {
			return big.NewInt(int64(n * (n - 1) / 2))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for n := 3; n <= 80; n++ {
				k := tt.k
				if k < 0 {
					k = n + k
				}
				v, err := Stirling2(n, k)
				require.NoError(t, err)
				assert.Equal(t, 0, tt.want(n).Cmp(v), "S(%d,%d) = %s", n, k, v)
			}
		})
	}
}

func TestStirling2_KnownValues(t *testing.T) {
	tests := []struct {
		n, k int
		want string
	}{
		{10, 4, "34105"},
		{10, 5, "42525"},
		{12, 6, "1323652"},
	}

	for _, tt := range tests {
		v, err := Stirling2(tt.n, tt.k)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.String(), "S(%d,%d)", tt.n, tt.k)
	}
}

func TestBell_MatchesTriangle(t *testing.T) {
	rows, err := BellTriangle(40)
	require.NoError(t, err)

	for n, row := range rows {
		v, err := Bell(n)
		require.NoError(t, err)
		assert.Equal(t, 0, row[0].Cmp(v), "B_%d", n)
	}

	v, err := Bell(15)
	require.NoError(t, err)
	assert.Equal(t, "1382958545", v.String())
}

func TestCatalan_DoubledArgumentOverflows(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"just past half", math.MaxInt/2 + 1},
		{"max int", math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Catalan(tt.n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrOverflow))
		})
	}
}

func TestFactorial(t *testing.T) {
	v, err := Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	v, err = Factorial(20)
	require.NoError(t, err)
	assert.Equal(t, "2432902008176640000", v.String())

	v, err = Factorial(25)
	require.NoError(t, err)
	assert.Equal(t, "15511210043330985984000000", v.String())
}
