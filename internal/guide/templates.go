package guide

// headerMark is replaced by the token header name of the active variant.
const headerMark = "{header}"

// jsonCmdletMark is replaced by the ConvertTo-Json spelling the variant's
// bundle ships with.
const jsonCmdletMark = "{convert}"

// jsonCmdlets maps a token header to its bundle's spelling. Headers not
// listed use ConvertTo-Json.
var jsonCmdlets = map[string]string{
	"X-DMP-TOKEN": "ConvertTo-JSON",
}

func jsonCmdlet(header string) string {
	if c, ok := jsonCmdlets[header]; ok {
		return c
	}
	return "ConvertTo-Json"
}

const pythonBody = `import requests

url = "http://{ip}:{port}"
token = "your token"
# 中文
lang = "zh"
# English
# lang = "en"

payload = {}
headers = {
    '{header}': token,
    'X-I18n-Lang': lang
}

response = requests.request("GET", url, headers=headers, data=payload)

print(response.text)`

const golangBody = `package main

import (
  "fmt"
  "net/http"
  "io"
)

func main() {
  token := "your token"
  url := "http://{ip}:{port}"
  method := "GET"
  //中文
  lang := "zh"
  //English
  //lang := "en"

  client := &http.Client{}
  req, err := http.NewRequest(method, url, nil)

  if err != nil {
    fmt.Println(err)
    return
  }
  req.Header.Add("{header}", token)
  req.Header.Add("X-I18n-Lang", lang)

  res, err := client.Do(req)
  if err != nil {
    fmt.Println(err)
    return
  }
  defer res.Body.Close()

  body, err := io.ReadAll(res.Body)
  if err != nil {
    fmt.Println(err)
    return
  }
  fmt.Println(string(body))
}`

const javaBody = `import java.io.BufferedReader;
import java.io.InputStreamReader;
import java.net.HttpURLConnection;
import java.net.URL;

public class Main {
    public static void main(String[] args) {
        try {
            // 定义请求的 URL
            String url = "http://{ip}:{port}";
            // 定义 token 和语言
            String token = "your token";
            String lang = "zh"; // 中文
            // String lang = "en"; // English

            // 创建 URL 对象
            URL apiUrl = new URL(url);
            // 打开连接
            HttpURLConnection connection = (HttpURLConnection) apiUrl.openConnection();
            // 设置请求方法
            connection.setRequestMethod("GET");
            // 添加请求头
            connection.setRequestProperty("{header}", token);
            connection.setRequestProperty("X-I18n-Lang", lang);

            // 获取响应码
            int responseCode = connection.getResponseCode();
            System.out.println("Response Code: " + responseCode);

            // 读取响应内容
            BufferedReader in = new BufferedReader(new InputStreamReader(connection.getInputStream()));
            String inputLine;
            StringBuilder response = new StringBuilder();

            while ((inputLine = in.readLine()) != null) {
                response.append(inputLine);
            }
            in.close();

            // 打印响应内容
            System.out.println("Response Body: " + response.toString());
        } catch (Exception e) {
            e.printStackTrace();
        }
    }
}`

const curlBody = "curl --location --globoff 'http://{ip}:{port}' \\\n" +
	"--header '{header}: token' \\\n" +
	"--header 'X-I18n-Lang: lang'"

const powershellBody = `$headers = New-Object "System.Collections.Generic.Dictionary[[String],[String]]"
$headers.Add("{header}", "token")
$headers.Add("X-I18n-Lang", "lang")

$response = Invoke-RestMethod 'http://{ip}:{port}' -Method 'GET' -Headers $headers
$response | {convert}`

// templates in display order
var templates = []Snippet{
	{Language: "Python", ID: "Python", Fence: "python", Body: pythonBody},
	{Language: "Golang", ID: "Golang", Fence: "golang", Body: golangBody},
	{Language: "Java", ID: "Java", Fence: "java", Body: javaBody},
	{Language: "cURL", ID: "cURL", Fence: "bash", Body: curlBody},
	{Language: "PowerShell", ID: "PowerShell", Fence: "powershell", Body: powershellBody},
}
