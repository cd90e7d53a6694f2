// Copyright (c) Quorum Authors.
// Licensed under the MIT License.

/*
Package types 提供 Quorum 投票引擎的全局共享类型定义。

# 概述

types 是引擎最底层的公共包，不依赖任何内部包，为 canonical、redflag、
tally、voting、providers 等上层模块提供统一的类型契约。所有跨包共享的
结构体、枚举和错误码均定义于此，以避免循环依赖。

# 核心类型

  - Task          — 一次共识决策的输入（提示词、模型、Schema、信任档案）
  - Policy        — 采样策略（K、MaxAttempts、ConcurrencyLimit、Timeout、红旗边界）
  - RedFlagBounds — 红旗过滤边界（长度 / Token 上限 / Schema 要求）
  - Ballot        — 单次采样结果（原始文本、规范形式、红旗标记、延迟）
  - Verdict       — 决策结论（WON / INCONCLUSIVE / ABORTED）及完整审计轨迹
  - AnswerSchema  — 结构化答案声明（必填字段列表）
  - Error / ErrorCode — 结构化错误体系，含 Retryable、Provider 标记

# 主要能力

  - 策略校验：Policy.Validate（K ≥ 1、MaxAttempts ≥ K 等前置不变量）
  - 错误工具链：NewError / WithCause / IsErrorCode / IsRetryable
  - 红旗原因码：ReasonTooShort / ReasonTooLong / ReasonNotCanonicalizable 等
*/
package types
