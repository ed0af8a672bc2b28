package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	employeeCodePrefix = "EMP"
	employeeCodeDigits = 6
)

// NextEmployeeCode derives the next sequential employee code from the last
// issued one. With no prior code it seeds the sequence at EMP<yy>0001. If the
// last code cannot be parsed it falls back to a random code in the high band
// so a corrupt row never blocks registration.
func NextEmployeeCode(last string, now time.Time) string {
	if last == "" {
		return employeeCodePrefix + now.Format("06") + "0001"
	}
	suffix := strings.TrimPrefix(last, employeeCodePrefix)
	n, err := strconv.Atoi(suffix)
	if err != nil || len(suffix) != employeeCodeDigits {
		return randomEmployeeCode()
	}
	return fmt.Sprintf("%s%0*d", employeeCodePrefix, employeeCodeDigits, n+1)
}

// randomEmployeeCode picks from 900000-999999 to keep clear of the sequential
// range.
func randomEmployeeCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return employeeCodePrefix + "999999"
	}
	return fmt.Sprintf("%s%d", employeeCodePrefix, 900000+n.Int64())
}
