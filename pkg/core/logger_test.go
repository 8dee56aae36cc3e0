package core

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevel(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, SetupLogger(false).GetLevel())
	assert.Equal(t, logrus.DebugLevel, SetupLogger(true).GetLevel())
}
