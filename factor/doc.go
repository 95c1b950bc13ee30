// Package factor lists the divisors of non-negative integers.
//
//   - Factors returns every positive divisor in ascending order by trial
//     division up to √n, collecting each divisor together with its pair.
//   - PrimeFactors returns the prime-power decomposition of n, delegating
//     to github.com/cznic/mathutil.
package factor
