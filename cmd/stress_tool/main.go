package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Config
const (
	BaseURL      = "http://localhost:8080"
	TotalWriters = 200 // 并发写入协程数
	LogsPerGo    = 10  // 每个协程写入的日志条数
)

var httpClient *http.Client

func init() {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 500
	t.MaxIdleConnsPerHost = 500
	t.MaxConnsPerHost = 500
	httpClient = &http.Client{
		Transport: t,
		Timeout:   10 * time.Second,
	}
}

func main() {
	// 1. 以演示会员身份登录换取令牌
	token := loginDemoMember()
	if token == "" {
		fmt.Println("登录失败，确认服务已启动")
		return
	}

	total := TotalWriters * LogsPerGo
	fmt.Printf("开始压测：%d 个协程并发写入 %d 条日志...\n", TotalWriters, total)

	// 2. 并发写入日志，验证排序不变量在并发下保持
	var wg sync.WaitGroup
	successCount := 0
	failCount := 0
	var mu sync.Mutex

	start := time.Now()

	for i := 0; i < TotalWriters; i++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()
			for j := 0; j < LogsPerGo; j++ {
				ok := addDiveLog(token, writer, j)
				mu.Lock()
				if ok {
					successCount++
				} else {
					failCount++
				}
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()
	duration := time.Since(start)
	qps := float64(total) / duration.Seconds()

	sorted := verifySorted(token)

	fmt.Println("--------------------------------------------------")
	fmt.Printf("压测结束，耗时: %v\n", duration)
	fmt.Printf("总请求数: %d\n", total)
	fmt.Printf("QPS: %.2f\n", qps)
	fmt.Printf("写入成功: %d\n", successCount)
	fmt.Printf("写入失败: %d\n", failCount)
	fmt.Printf("列表保持日期降序: %v\n", sorted)
	fmt.Println("--------------------------------------------------")
}

func loginDemoMember() string {
	resp, err := httpClient.Post(BaseURL+"/auth/demo/member", "application/json", nil)
	if err != nil {
		fmt.Printf("登录请求失败: %v\n", err)
		return ""
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	var result struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		fmt.Printf("解析登录响应失败: %v\n", err)
		return ""
	}
	return result.Data.Token
}

func addDiveLog(token string, writer, seq int) bool {
	payload := map[string]interface{}{
		"title":    fmt.Sprintf("Stresstest Tauchgang %d-%d", writer, seq),
		"location": "Testbecken",
		"depth":    18.5,
		"duration": 45,
		"date":     fmt.Sprintf("2026-%02d-%02d", writer%12+1, seq%28+1),
	}
	body, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, BaseURL+"/divelogs", bytes.NewBuffer(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return false
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}
	var result struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return false
	}
	return result.Code == 0
}

func verifySorted(token string) bool {
	resp, err := httpClient.Get(BaseURL + "/divelogs")
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	var result struct {
		Data []struct {
			Date string `json:"date"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return false
	}
	for i := 1; i < len(result.Data); i++ {
		if result.Data[i-1].Date < result.Data[i].Date {
			return false
		}
	}
	return true
}
