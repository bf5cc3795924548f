package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 端到端测试针对一个正在运行的服务（STORE_BACKEND=memory），
// 未设置 E2E_BASE_URL 时全部跳过。
var (
	BaseURL   = os.Getenv("E2E_BASE_URL")
	APIPrefix = "/api/v1"
	JWTSecret = envOr("E2E_JWT_SECRET", "your-super-secret-jwt-key-here")

	// Redis 配置（和服务端 .env 保持一致）
	RedisURL            = envOr("E2E_REDIS_URL", "localhost:6379")
	RedisPassword       = os.Getenv("E2E_REDIS_PASSWORD")
	RedisDB, _          = strconv.Atoi(envOr("E2E_REDIS_DB", "0"))
	NotificationChannel = envOr("E2E_NOTIFICATION_CHANNEL", "social:notifications")
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// requireServer 服务不可达时跳过
func requireServer(t *testing.T) {
	t.Helper()
	if BaseURL == "" {
		t.Skip("E2E_BASE_URL not set")
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(BaseURL + "/health")
	if err != nil {
		t.Skipf("server not reachable: %v", err)
	}
	resp.Body.Close()
}

// getRedisClient 获取 Redis 客户端，不可用时跳过
func getRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:     RedisURL,
		Password: RedisPassword,
		DB:       RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		t.Skipf("redis not reachable: %v", err)
	}
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

// TestUser 测试用户
type TestUser struct {
	ID    uuid.UUID
	Token string
}

// generateJWT 生成 JWT Token
func generateJWT(userID uuid.UUID) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// createTestUser 创建测试用户
func createTestUser() *TestUser {
	userID := uuid.New()
	return &TestUser{
		ID:    userID,
		Token: generateJWT(userID),
	}
}

// httpRequest HTTP 请求辅助函数
func httpRequest(method, path, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, BaseURL+path, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, respBody, err
}

// parseResponse 解析统一响应格式，返回 data 字段
func parseResponse(body []byte) map[string]interface{} {
	var response struct {
		Code    int                    `json:"code"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	json.Unmarshal(body, &response)
	if response.Data != nil {
		return response.Data
	}
	var result map[string]interface{}
	json.Unmarshal(body, &result)
	return result
}

// createPost 发帖并返回帖子 ID
func createPost(t *testing.T, user *TestUser, title string) string {
	t.Helper()
	resp, body, err := httpRequest("POST", APIPrefix+"/posts", user.Token, map[string]string{
		"title":   title,
		"content": "e2e",
	})
	if err != nil || resp.StatusCode != 200 {
		t.Fatalf("failed to create post: %v %s", err, body)
	}
	post := parseResponse(body)["post"].(map[string]interface{})
	return post["id"].(string)
}

// getNotifications 获取通知列表
func getNotifications(t *testing.T, user *TestUser) []interface{} {
	t.Helper()
	resp, body, err := httpRequest("GET", APIPrefix+"/notifications?limit=50", user.Token, nil)
	if err != nil || resp.StatusCode != 200 {
		t.Fatalf("failed to get notifications: %v %s", err, body)
	}
	list, ok := parseResponse(body)["notifications"].([]interface{})
	if !ok {
		return []interface{}{}
	}
	return list
}
