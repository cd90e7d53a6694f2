// Copyright (c) Quorum Authors.
// Licensed under the MIT License.

/*
Package tally 按规范形式累计票数并检测 first-to-ahead-by-k 胜出条件。

# 概述

计票是一个序贯检验：每记入一票立即重算前两名，最高票领先次高票
至少 K 票即判胜。这让调度器可以在答案高度一致时远早于预算上限停止，
而不是等全部采样完成后做批量判定。

# 并发契约

Tally 自持互斥锁，所有更新串行通过单一临界区；胜出检测永远不会
看到半更新状态。票的到达顺序任意——计数对完成顺序满足交换律，
最终计数与顺序无关。

# 平票规则

最高票被多个规范形式共享时，best 与 runnerUp 同票，领先差为 0，
无论 K 为多少都不满足胜出条件。并列时 best 按字典序取最小的
规范形式，保证快照的确定性。
*/
package tally
