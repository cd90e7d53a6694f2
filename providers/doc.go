// Copyright (c) Quorum Authors.
// Licensed under the MIT License.

/*
Package providers 定义投票引擎的生成协作者契约及其实现。

# 概述

引擎把文本生成视为黑盒能力："给定提示词，返回文本或失败"。
本包提供统一的 Generator 接口、面向 OpenAI 兼容端点的 HTTP 实现，
以及供测试使用的确定性替身。

# 核心接口

  - Generator — Generate(ctx, req) 单次采样调用，必须尊重 ctx 取消
  - HealthChecker — 可选的轻量探活接口

# 实现

  - OpenAI — 任意 OpenAI 兼容的 chat completions 端点（原生 OpenAI、
    Ollama、vLLM 等），Bearer 密钥从配置或 OPENAI_API_KEY 环境变量读取
  - Static / Script / Func — 测试替身：固定答案、预设序列、任意函数

# 错误语义

供应商错误以 types.Error（PROVIDER_FAILURE 等）返回；引擎将其计为
红旗票（消耗预算、不计票数），不会中断整体决策。
*/
package providers
