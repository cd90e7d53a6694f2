// Copyright (c) Quorum Authors.
// Licensed under the MIT License.

/*
Package redflag 在候选答案计票之前拦截病态输出。

# 概述

红旗票计入采样预算但永远不计入票数，因此单一的畸形失败模式即使反复
出现也无法被宣告为共识。这是投票引擎对抗"一致性错误"的第一道防线。

# 检查顺序

  1. 长度下限 / 上限（字符数，rune 计数）
  2. Token 上限（tiktoken 计数，仅在边界启用时执行）
  3. 规范化（委托 canonical 包；解析失败或缺失必填字段即红旗）

# 动态边界

DeriveBounds 在采样开始前按任务派生一次有效边界：按模型家族给出
Token 上限默认值，低信任来源收紧上限。派生发生在采样循环之外，
采样过程中边界不变，保证计票的纯粹性。具体数字仅为默认值，
调用方可通过 Policy.RedFlagBounds 覆盖。
*/
package redflag
