package mocks

import (
	"time"

	gomock "github.com/golang/mock/gomock"
)

// GetMockedConfig returns a config that points the search client at apiURL.
func GetMockedConfig(ctrl *gomock.Controller, apiURL string) *MockConfig {
	config := NewMockConfig(ctrl)
	config.EXPECT().GetString("api_url").Return(apiURL).AnyTimes()
	config.EXPECT().GetDuration("timeout").Return(5 * time.Second).AnyTimes()
	config.EXPECT().GetString("user_agent").Return("").AnyTimes()
	config.EXPECT().GetBool("verbose").Return(false).AnyTimes()
	config.EXPECT().GetInt("port").Return(5000).AnyTimes()
	return config
}
