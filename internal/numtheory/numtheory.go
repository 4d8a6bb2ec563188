package numtheory

import (
	"math"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

func requirePositive(n int) error {
	if n <= 0 {
		return domain.DomainError(domain.ReasonNotPositive, "")
	}
	return nil
}

// IsPrime reports whether n is prime. It is false for n <= 1.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Divisors returns every positive divisor of n in ascending order.
func Divisors(n int) ([]int, error) {
	if err := requirePositive(n); err != nil {
		return nil, err
	}
	var small, large []int
	for i := 1; i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if q := n / i; q != i {
			large = append(large, q)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small, nil
}

// PrimeFactorization returns the (prime, exponent) pairs of n with primes
// strictly increasing. PrimeFactorization(1) is empty.
func PrimeFactorization(n int) ([]domain.PrimePower, error) {
	if err := requirePositive(n); err != nil {
		return nil, err
	}
	factors := []domain.PrimePower{}
	q := n

	if count := divideOut(&q, 2); count > 0 {
		factors = append(factors, domain.PrimePower{Prime: 2, Exponent: count})
	}
	for i := 3; i <= q/i; i += 2 {
		if count := divideOut(&q, i); count > 0 {
			factors = append(factors, domain.PrimePower{Prime: i, Exponent: count})
		}
	}
	if q > 2 {
		factors = append(factors, domain.PrimePower{Prime: q, Exponent: 1})
	}
	return factors, nil
}

func divideOut(q *int, p int) int {
	count := 0
	for *q%p == 0 {
		*q /= p
		count++
	}
	return count
}

// DivisorSum returns σ(n), the sum of every positive divisor of n.
func DivisorSum(n int) (int, error) {
	divisors, err := Divisors(n)
	if err != nil {
		return 0, err
	}
	return sum(divisors)
}

func sum(values []int) (int, error) {
	total := 0
	for _, v := range values {
		if total > math.MaxInt-v {
			return 0, domain.Overflow("divisor sum")
		}
		total += v
	}
	return total, nil
}

// IsPerfect reports whether n equals the sum of its proper divisors.
func IsPerfect(n int) (bool, error) {
	s, err := DivisorSum(n)
	if err != nil {
		return false, err
	}
	return s-n == n, nil
}

// Totient returns φ(n) using the product formula n·Π(1 - 1/p) over the
// distinct primes dividing n.
func Totient(n int) (int, error) {
	factors, err := PrimeFactorization(n)
	if err != nil {
		return 0, err
	}
	return totientFromFactors(n, factors), nil
}

func totientFromFactors(n int, factors []domain.PrimePower) int {
	result := n
	for _, f := range factors {
		result -= result / f.Prime
	}
	return result
}

// TotientScan returns φ(n) by counting i in [1, n] with gcd(i, n) = 1.
// It agrees with Totient for every n but costs O(n log n).
func TotientScan(n int) (int, error) {
	if err := requirePositive(n); err != nil {
		return 0, err
	}
	count := 0
	for i := 1; i <= n; i++ {
		if GCD(i, n) == 1 {
			count++
		}
	}
	return count, nil
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsPerfectSquare reports whether n is the square of an integer.
func IsPerfectSquare(n int) bool {
	if n < 0 {
		return false
	}
	r := isqrt(n)
	return r*r == n
}

// isqrt returns floor(√n) for n >= 0.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
