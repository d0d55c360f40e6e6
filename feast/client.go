// Package feast 对接 Feast Feature Store，为参与度分析提供在线特征。
//
// 领域层只依赖 Client 接口与 core.ActivityStore；GrpcClient 是基于官方
// SDK 的基础设施实现，ActivitySource 把特征向量翻译成活跃计数。
package feast

import (
	"context"
	"time"
)

// Client 是 Feast 在线特征服务的客户端接口。
//
// 使用方式：
//
//	client, _ := feast.NewGrpcClient("localhost", 6565, "edu")
//	resp, _ := client.GetOnlineFeatures(ctx, &feast.GetOnlineFeaturesRequest{
//	    Features:   []string{"user_activity:logins"},
//	    EntityRows: []map[string]any{{"user_id": "u1"}},
//	})
//
// 参考：https://github.com/feast-dev/feast
type Client interface {
	// GetOnlineFeatures 按实体行批量获取在线特征
	GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error)

	// Close 关闭客户端连接
	Close() error
}

// GetOnlineFeaturesRequest 在线特征请求。
type GetOnlineFeaturesRequest struct {
	// Features 特征名称列表，例如 ["user_activity:logins"]
	Features []string

	// EntityRows 实体行，例如 [{"user_id": "u1"}]
	EntityRows []map[string]any

	// Project 项目名称，为空时用客户端默认项目
	Project string
}

// GetOnlineFeaturesResponse 在线特征响应。
type GetOnlineFeaturesResponse struct {
	// FeatureVectors 特征向量列表，与请求的实体行一一对应
	FeatureVectors []FeatureVector
}

// FeatureVector 单个实体的特征向量。
type FeatureVector struct {
	// Values key 为特征名称
	Values map[string]any

	// EntityRow 对应的实体行
	EntityRow map[string]any
}

// ClientOption 客户端配置选项。
type ClientOption func(*ClientConfig)

// ClientConfig 客户端配置。
type ClientConfig struct {
	Endpoint string
	Project  string
	Timeout  time.Duration

	// Auth 为 nil 时走无认证的 insecure 连接
	Auth *AuthConfig
}

// AuthConfig gRPC 静态 Token 认证配置。
type AuthConfig struct {
	Token     string
	EnableTLS bool
}

// WithTimeout 设置请求超时。
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.Timeout = timeout
	}
}

// WithAuth 设置静态 Token 认证。
func WithAuth(auth *AuthConfig) ClientOption {
	return func(c *ClientConfig) {
		c.Auth = auth
	}
}
