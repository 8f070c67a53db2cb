package worker

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUsagePool(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Usage Pool Suite")
}
